package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mediatools/shottime/internal/timeline"
)

func record(path string, anchor, target *int64, reason string) *timeline.Record {
	r := &timeline.Record{Path: path, ModTime: time.Unix(0, 0)}
	if anchor != nil {
		r.Anchor = &timeline.Anchor{Time: time.Unix(*anchor, 0), Source: timeline.SourceMetadata}
	}
	if target != nil {
		t := time.Unix(*target, 0)
		r.Target = &t
		r.TargetReason = reason
	}
	return r
}

func i64(v int64) *int64 { return &v }

func TestPrintRecords_StatusTags(t *testing.T) {
	records := []*timeline.Record{
		record("ok.jpg", i64(100), i64(100), "shot from metadata"),
		record("fill.jpg", nil, i64(101), "interpolated between anchors"),
		record("skip.jpg", nil, nil, ""),
	}

	var buf bytes.Buffer
	NewPrinter(&buf, false).PrintRecords(records)
	out := buf.String()

	assert.Contains(t, out, "[OK]")
	assert.Contains(t, out, "[FILL] fill.jpg")
	assert.Contains(t, out, "[SKIP] skip.jpg")
	assert.Contains(t, out, "(interpolated between anchors)")
	assert.Contains(t, out, "no target time inferred")
}

func TestPrintRecords_ReferenceTimes(t *testing.T) {
	r := record("a.jpg", nil, nil, "")
	c := time.Unix(500, 0)
	r.Ref.Create = &c

	var buf bytes.Buffer
	NewPrinter(&buf, false).PrintRecords([]*timeline.Record{r})

	assert.Contains(t, buf.String(), "ctime :")
	assert.NotContains(t, buf.String(), "wtime :")
}

func TestPrintSummary_Counts(t *testing.T) {
	records := []*timeline.Record{
		record("a.jpg", i64(100), i64(100), "shot from metadata"),
		record("b.jpg", nil, i64(101), "interpolated between anchors"),
		record("c.jpg", nil, i64(102), "interpolated between anchors"),
		record("d.jpg", nil, nil, ""),
	}
	stats := timeline.Stats{Total: 4, Anchors: 1, Filled: 2, Skipped: 1}

	var buf bytes.Buffer
	NewPrinter(&buf, false).PrintSummary(records, stats)
	out := buf.String()

	assert.Contains(t, out, "Files")
	assert.Contains(t, out, "4")
	assert.Contains(t, out, "Skipped (no target)")
	assert.Contains(t, out, "By reason:")

	// Reasons appear in first-seen order with their counts.
	metaIdx := strings.Index(out, "shot from metadata")
	interpIdx := strings.Index(out, "interpolated between anchors")
	assert.Greater(t, interpIdx, metaIdx)
	assert.Greater(t, metaIdx, 0)
}

func TestPrintApplySummary(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).PrintApplySummary(3, 9, 0)
	out := buf.String()

	assert.Contains(t, out, "EXIF updated (missing-only)")
	assert.Contains(t, out, "Filesystem times updated")
	assert.NotContains(t, out, "Verification mismatches")
}

func TestPrintApplySummary_VerifyFailures(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).PrintApplySummary(0, 0, 2)

	assert.Contains(t, buf.String(), "Verification mismatches: 2")
}

func TestTallyReasons_FirstSeenOrder(t *testing.T) {
	records := []*timeline.Record{
		record("a.jpg", nil, i64(1), "beta"),
		record("b.jpg", nil, i64(2), "alpha"),
		record("c.jpg", nil, i64(3), "beta"),
	}

	m := tallyReasons(records)
	assert.Equal(t, 2, m.Len())

	el := m.Front()
	assert.Equal(t, "beta", el.Key)
	assert.Equal(t, 2, el.Value)
	assert.Equal(t, "alpha", el.Next().Key)
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "-", FormatTime(nil))

	ts := time.Date(2021, 12, 30, 21, 54, 25, 0, time.UTC)
	assert.Equal(t, "2021-12-30 21:54:25", FormatTime(&ts))
}
