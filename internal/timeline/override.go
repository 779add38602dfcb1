package timeline

// applyFilenameOverride pins the record's target to its filename-derived
// timestamp when the filesystem times drift too far from it. A copied file
// keeps a filename timestamp but gets fresh filesystem times, so large
// drift is treated as stronger evidence than either metadata or mtime.
//
// When two independent reference times are present, both must exceed the
// threshold. Otherwise the drift of the modification time alone decides.
// Returns true when the override fired.
func applyFilenameOverride(r *Record, opts Options) bool {
	if r.FilenameTime == nil || r.Target != nil {
		return false
	}

	threshold := opts.FilenameOverrideDays * secondsPerDay
	f := r.FilenameTime.Unix()

	if r.Ref.Create != nil && r.Ref.Write != nil {
		dc := absDiff(r.Ref.Create.Unix(), f)
		dw := absDiff(r.Ref.Write.Unix(), f)
		if dc > threshold && dw > threshold {
			r.setTarget(*r.FilenameTime, "filename override (fs create/write too far)")
			return true
		}
		return false
	}

	if absDiff(r.ModTime.Unix(), f) > threshold {
		r.setTarget(*r.FilenameTime, "filename override (mtime too far)")
		return true
	}
	return false
}

func absDiff(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}
