// Package timeline resolves a single authoritative shot time for every
// record in a media collection. Records enter with an optional anchor time
// (read from metadata or parsed from the filename by external providers)
// and leave with an optional target time plus a human-readable reason.
//
// The pipeline is a pure transform over the record sequence and performs
// no I/O of its own.
package timeline

import "time"

// AnchorSource identifies where a record's anchor time came from.
type AnchorSource int

const (
	SourceNone AnchorSource = iota
	SourceMetadata
	SourceFilename
)

// String returns a short label for the anchor source.
func (s AnchorSource) String() string {
	switch s {
	case SourceMetadata:
		return "metadata"
	case SourceFilename:
		return "filename"
	default:
		return "none"
	}
}

// Anchor is a directly-obtained (non-inferred) shot time.
type Anchor struct {
	Time   time.Time
	Source AnchorSource
}

// ReferenceTimes holds secondary filesystem timestamps, when the platform
// exposes them. They are read-only inputs to the filename override rule.
type ReferenceTimes struct {
	Create *time.Time
	Write  *time.Time
}

// Record is one file under consideration. Ordering key is (ModTime, Path),
// ties broken lexicographically by path.
type Record struct {
	Path    string
	ModTime time.Time
	Ref     ReferenceTimes

	// FilenameTime is the plausibility-checked timestamp parsed from the
	// filename, if any. Populated by the collector; input to the override
	// rule even when the anchor came from metadata.
	FilenameTime *time.Time

	// Anchor is set once by the collector and never mutated here.
	Anchor *Anchor

	// Target is the resolved time to apply downstream. Set at most once;
	// nil after resolution means no information was available.
	Target       *time.Time
	TargetReason string
}

// HasAnchor reports whether the record carries a directly-obtained shot time.
func (r *Record) HasAnchor() bool {
	return r.Anchor != nil
}

// Inferred reports whether the record's target was computed rather than
// directly obtained. Override targets on anchor-less records are inferred
// for the purposes of the uniqueness pass.
func (r *Record) Inferred() bool {
	return r.Anchor == nil && r.Target != nil
}

// setTarget assigns the target once with its reason. It is a no-op when a
// target is already present.
func (r *Record) setTarget(t time.Time, reason string) {
	if r.Target != nil {
		return
	}
	r.Target = &t
	r.TargetReason = reason
}

// appendReason adds a rationale fragment without discarding earlier ones.
func (r *Record) appendReason(reason string) {
	if r.TargetReason != "" {
		r.TargetReason += " + "
	}
	r.TargetReason += reason
}
