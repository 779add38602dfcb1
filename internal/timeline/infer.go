package timeline

import "time"

// inferMissing computes targets for every maximal run of consecutive
// anchor-less records (a segment) from the nearest anchors outside it.
// Records must already be sorted; targets set earlier (by the override
// rule) are never overwritten.
//
// Regime selection per segment of length m:
//   - no anchor on either side: leave targets unset
//   - one-sided: step-fill away from the known anchor (flat fill when
//     stepping is disabled)
//   - both sides, |gap| over the day limit: nearest-anchor fill by position
//   - both sides, |gap| < m+1: not enough distinct seconds, step-fill in
//     the anchors' direction
//   - both sides otherwise: linear interpolation, truncated toward zero
func inferMissing(records []*Record, opts Options) {
	gapLimit := opts.AnchorGapLimitDays * secondsPerDay
	step := opts.OneSideStepSeconds

	n := len(records)
	i := 0
	for i < n {
		if records[i].HasAnchor() {
			i++
			continue
		}

		l := i
		for i < n && !records[i].HasAnchor() {
			i++
		}
		r := i - 1

		var tprev, tnext *int64
		if l-1 >= 0 {
			v := records[l-1].Anchor.Time.Unix()
			tprev = &v
		}
		if r+1 < n {
			v := records[r+1].Anchor.Time.Unix()
			tnext = &v
		}

		switch {
		case tprev != nil && tnext != nil:
			fillBounded(records[l:i], *tprev, *tnext, gapLimit, step)
		case tprev != nil:
			fillForward(records[l:i], *tprev, step, opts.OneSideStep)
		case tnext != nil:
			fillBackward(records[l:i], *tnext, step, opts.OneSideStep)
		default:
			// irrecoverable, reported downstream as skipped
		}
	}
}

// fillBounded handles segments with anchors on both sides.
func fillBounded(seg []*Record, tprev, tnext, gapLimit, step int64) {
	m := int64(len(seg))
	gap := tnext - tprev
	absGap := gap
	if absGap < 0 {
		absGap = -absGap
	}

	switch {
	case absGap > gapLimit:
		// Interpolating across such a span is judged unreliable.
		for j, rec := range seg {
			t := tprev
			if int64(j) >= m/2 {
				t = tnext
			}
			rec.setTarget(time.Unix(t, 0), "gap too large -> nearest anchor fill")
		}
	case absGap < m+1:
		// The span lacks enough distinct seconds for unique interpolation.
		dir := int64(1)
		if gap < 0 {
			dir = -1
		}
		for k := int64(1); k <= m; k++ {
			t := tprev + dir*k*step
			seg[k-1].setTarget(time.Unix(t, 0), "anchors too close -> step-filled")
		}
	default:
		for k := int64(1); k <= m; k++ {
			t := tprev + gap*k/(m+1)
			seg[k-1].setTarget(time.Unix(t, 0), "interpolated between anchors")
		}
	}
}

// fillForward handles segments with only a preceding anchor.
func fillForward(seg []*Record, tprev, step int64, stepped bool) {
	for j, rec := range seg {
		t := tprev
		reason := "only prev anchor -> filled"
		if stepped {
			t = tprev + int64(j+1)*step
			reason = "only prev anchor -> filled +1s steps"
		}
		rec.setTarget(time.Unix(t, 0), reason)
	}
}

// fillBackward handles segments with only a following anchor. The last
// record lands at tnext-step so the whole segment stays strictly before
// the anchor.
func fillBackward(seg []*Record, tnext, step int64, stepped bool) {
	m := int64(len(seg))
	for j, rec := range seg {
		t := tnext
		reason := "only next anchor -> filled"
		if stepped {
			t = tnext - (m-int64(j))*step
			reason = "only next anchor -> filled -1s steps"
		}
		rec.setTarget(time.Unix(t, 0), reason)
	}
}
