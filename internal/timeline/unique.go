package timeline

import "time"

// makeUnique sweeps the sequence left to right and bumps inferred targets
// that collide with or fall behind the previous record's final target.
// Anchored records are never bumped, even when that leaves a local
// non-monotonic join with an adjacent inferred record; correcting an
// anchored time here would second-guess directly-obtained evidence.
func makeUnique(records []*Record, opts Options) {
	step := opts.OneSideStepSeconds
	if step < 1 {
		step = 1
	}

	var prevTarget *int64
	for _, r := range records {
		if r.Target == nil {
			continue
		}

		t := r.Target.Unix()
		if prevTarget != nil && r.Inferred() && t <= *prevTarget {
			t = *prevTarget + step
			bumped := time.Unix(t, 0)
			r.Target = &bumped
			r.appendReason("unique(+1s steps)")
		}

		final := t
		prevTarget = &final
	}
}
