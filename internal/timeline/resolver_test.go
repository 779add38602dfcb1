package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_EndToEnd(t *testing.T) {
	// Unsorted input: two anchors bounding three missing records.
	records := []*Record{
		rec("d.jpg", 4),
		anchored("a.jpg", 1, 0, SourceMetadata),
		rec("c.jpg", 3),
		anchored("e.jpg", 5, 10, SourceFilename),
		rec("b.jpg", 2),
	}

	stats := Resolve(records, DefaultOptions())

	assert.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg"}, paths(records))
	assert.Equal(t, []int64{0, 2, 5, 7, 10}, targets(records))
	assert.Equal(t, "shot from metadata", records[0].TargetReason)
	assert.Equal(t, "shot from filename", records[4].TargetReason)

	assert.Equal(t, Stats{Total: 5, Anchors: 2, Filled: 3}, stats)
}

func TestResolve_Stats(t *testing.T) {
	// A trailing anchor-less run is still recoverable via one-sided fill.
	records := []*Record{
		anchored("a.jpg", 0, 100, SourceMetadata),
		rec("b.jpg", 1),
		rec("c.jpg", 100),
		rec("d.jpg", 101),
	}
	stats := Resolve(records, DefaultOptions())
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Anchors)
	assert.Equal(t, 3, stats.Filled)
	assert.Equal(t, 0, stats.Skipped)
}

func TestResolve_SkippedWhenNoInformation(t *testing.T) {
	records := []*Record{
		rec("a.jpg", 1),
		rec("b.jpg", 2),
	}

	stats := Resolve(records, DefaultOptions())

	assert.Nil(t, records[0].Target)
	assert.Nil(t, records[1].Target)
	assert.Equal(t, Stats{Total: 2, Skipped: 2}, stats)
}

func TestResolve_Idempotent(t *testing.T) {
	records := []*Record{
		anchored("a.jpg", 1, 0, SourceMetadata),
		rec("b.jpg", 2),
		rec("c.jpg", 3),
		anchored("d.jpg", 4, 100, SourceMetadata),
		rec("e.jpg", 5),
	}

	first := Resolve(records, DefaultOptions())

	snapshot := make([]int64, 0, len(records))
	reasons := make([]string, 0, len(records))
	for _, r := range records {
		snapshot = append(snapshot, r.Target.Unix())
		reasons = append(reasons, r.TargetReason)
	}

	second := Resolve(records, DefaultOptions())

	for i, r := range records {
		require.NotNil(t, r.Target)
		assert.Equal(t, snapshot[i], r.Target.Unix())
		assert.Equal(t, reasons[i], r.TargetReason)
	}
	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, first.Filled, second.Filled)
	assert.Equal(t, first.Skipped, second.Skipped)
}

func TestResolve_AnchorNeverMutated(t *testing.T) {
	r := anchored("a.jpg", 1, 42, SourceMetadata)
	Resolve([]*Record{r, rec("b.jpg", 2)}, DefaultOptions())

	require.NotNil(t, r.Anchor)
	assert.Equal(t, int64(42), r.Anchor.Time.Unix())
	assert.Equal(t, SourceMetadata, r.Anchor.Source)
}

func TestResolve_UniquenessBumpAfterInterference(t *testing.T) {
	// An anchored record resolves to 100; the next record interpolates to
	// a lower raw value and must be bumped past it.
	records := []*Record{
		anchored("a.jpg", 1, 100, SourceMetadata),
		rec("b.jpg", 2),
		anchored("c.jpg", 3, 99, SourceMetadata),
	}

	Resolve(records, DefaultOptions())

	// m=1, gap=-1, absGap=1 < 2: step fill gives 99, bumped to 101.
	assert.Equal(t, []int64{100, 101, 99}, targets(records))
	assert.Contains(t, records[1].TargetReason, "unique(+1s steps)")
}

func TestResolve_FlatFillThenUniquenessInteraction(t *testing.T) {
	// With stepping disabled, a one-sided segment collapses onto the
	// anchor time and the uniqueness pass fans all but the first out.
	opts := DefaultOptions()
	opts.OneSideStep = false

	records := []*Record{
		anchored("a.jpg", 1, 100, SourceMetadata),
		rec("b.jpg", 2),
		rec("c.jpg", 3),
		rec("d.jpg", 4),
	}

	Resolve(records, opts)

	assert.Equal(t, []int64{100, 101, 102, 103}, targets(records))
	assert.Equal(t, "only prev anchor -> filled + unique(+1s steps)", records[1].TargetReason)
}
