package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withFilenameTime(r *Record, unix int64) *Record {
	t := time.Unix(unix, 0)
	r.FilenameTime = &t
	return r
}

func withRefTimes(r *Record, create, write int64) *Record {
	c, w := time.Unix(create, 0), time.Unix(write, 0)
	r.Ref = ReferenceTimes{Create: &c, Write: &w}
	return r
}

func TestFilenameOverride_MtimeDrift(t *testing.T) {
	opts := DefaultOptions() // 7 day threshold
	const day = int64(86400)

	tests := []struct {
		name     string
		mtime    int64
		nameTime int64
		want     bool
	}{
		{"drift beyond threshold fires", 100 * day, 10 * day, true},
		{"drift exactly at threshold does not fire", 10 * day, 3 * day, false},
		{"small drift does not fire", 10 * day, 9 * day, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := withFilenameTime(rec("a.jpg", tt.mtime), tt.nameTime)
			fired := applyFilenameOverride(r, opts)

			assert.Equal(t, tt.want, fired)
			if tt.want {
				require.NotNil(t, r.Target)
				assert.Equal(t, tt.nameTime, r.Target.Unix())
				assert.Equal(t, "filename override (mtime too far)", r.TargetReason)
			} else {
				assert.Nil(t, r.Target)
			}
		})
	}
}

func TestFilenameOverride_BothReferenceTimesMustDrift(t *testing.T) {
	opts := DefaultOptions()
	const day = int64(86400)

	t.Run("both far fires", func(t *testing.T) {
		r := withRefTimes(withFilenameTime(rec("a.jpg", 100*day), 10*day), 100*day, 90*day)
		require.True(t, applyFilenameOverride(r, opts))
		assert.Equal(t, "filename override (fs create/write too far)", r.TargetReason)
		assert.Equal(t, int64(10*day), r.Target.Unix())
	})

	t.Run("one close suppresses override", func(t *testing.T) {
		// Write time within threshold: the file likely was not copied.
		r := withRefTimes(withFilenameTime(rec("a.jpg", 100*day), 10*day), 100*day, 11*day)
		assert.False(t, applyFilenameOverride(r, opts))
		assert.Nil(t, r.Target)
	})

	t.Run("reference times bypass mtime comparison", func(t *testing.T) {
		// mtime drifts far but both references are close: no override.
		r := withRefTimes(withFilenameTime(rec("a.jpg", 100*day), 10*day), 10*day, 10*day)
		assert.False(t, applyFilenameOverride(r, opts))
	})
}

func TestFilenameOverride_PreemptsMetadataAnchor(t *testing.T) {
	const day = int64(86400)
	r := anchored("a.jpg", 100*day, 50*day, SourceMetadata)
	withFilenameTime(r, 10*day)

	stats := Resolve([]*Record{r}, DefaultOptions())

	require.NotNil(t, r.Target)
	assert.Equal(t, int64(10*day), r.Target.Unix())
	assert.Equal(t, "filename override (mtime too far)", r.TargetReason)
	assert.Equal(t, 1, stats.Overridden)
}

func TestFilenameOverride_NoFilenameTime(t *testing.T) {
	r := rec("a.jpg", 100)
	assert.False(t, applyFilenameOverride(r, DefaultOptions()))
}

func TestFilenameOverride_Disabled(t *testing.T) {
	const day = int64(86400)
	opts := DefaultOptions()
	opts.EnableFilenameOverride = false

	r := withFilenameTime(rec("a.jpg", 100*day), 10*day)
	Resolve([]*Record{r}, opts)

	// Without the override the anchor-less record has no information on
	// either side and stays unset.
	assert.Nil(t, r.Target)
}
