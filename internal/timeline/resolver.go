package timeline

// Resolve runs the full resolution pipeline over records, mutating them in
// place: order, filename override, anchor assignment, gap inference,
// uniqueness sweep. It is deterministic and idempotent; running it again
// over an already-resolved sequence changes nothing.
func Resolve(records []*Record, opts Options) Stats {
	Sort(records)

	stats := Stats{Total: len(records)}

	if opts.EnableFilenameOverride {
		for _, r := range records {
			if applyFilenameOverride(r, opts) {
				stats.Overridden++
			}
		}
	}

	assignAnchorTargets(records)
	inferMissing(records, opts)
	makeUnique(records, opts)

	for _, r := range records {
		if r.HasAnchor() {
			stats.Anchors++
		}
		switch {
		case r.Target == nil:
			stats.Skipped++
		case r.Inferred():
			stats.Filled++
		}
	}
	return stats
}
