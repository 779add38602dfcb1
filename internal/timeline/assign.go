package timeline

// assignAnchorTargets sets target = anchor time for every anchored record
// the override rule left untouched.
func assignAnchorTargets(records []*Record) {
	for _, r := range records {
		if r.Target != nil || r.Anchor == nil {
			continue
		}
		reason := "shot from metadata"
		if r.Anchor.Source == SourceFilename {
			reason = "shot from filename"
		}
		r.setTarget(r.Anchor.Time, reason)
	}
}
