package timeline

const secondsPerDay = 86400

// Options configures the resolution pipeline.
type Options struct {
	// EnableFilenameOverride enables the drift override rule: when
	// filesystem times disagree with a filename-embedded timestamp beyond
	// FilenameOverrideDays, the filename timestamp wins over any anchor.
	EnableFilenameOverride bool
	FilenameOverrideDays   int64

	// AnchorGapLimitDays bounds interpolation: segments whose bounding
	// anchors are further apart than this fall back to nearest-anchor fill.
	AnchorGapLimitDays int64

	// OneSideStep enables stepped (vs. flat) fill when a segment has an
	// anchor on only one side. OneSideStepSeconds is the increment, also
	// used by the close-anchor step fill and the uniqueness pass.
	OneSideStep        bool
	OneSideStepSeconds int64
}

// DefaultOptions returns the resolution defaults.
func DefaultOptions() Options {
	return Options{
		EnableFilenameOverride: true,
		FilenameOverrideDays:   7,
		AnchorGapLimitDays:     90,
		OneSideStep:            true,
		OneSideStepSeconds:     1,
	}
}

// Stats summarizes one resolution run.
type Stats struct {
	Total      int // records processed
	Anchors    int // records with a directly-obtained shot time
	Overridden int // targets pinned by the filename override rule
	Filled     int // anchor-less records that received an inferred target
	Skipped    int // records left without a target
}
