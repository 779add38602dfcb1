// Package report renders per-file resolution results and aggregate counts
// for the terminal.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/mediatools/shottime/internal/timeline"
)

const timeLayout = "2006-01-02 15:04:05"

// Printer writes resolution reports. Colors are optional so output stays
// clean when piped or captured.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter creates a Printer. Enable colors for interactive terminals.
func NewPrinter(w io.Writer, colored bool) *Printer {
	return &Printer{w: w, color: colored}
}

// PrintRecords writes one block per record: status tag, path, resolved
// target with its reason, and the original filesystem times.
func (p *Printer) PrintRecords(records []*timeline.Record) {
	for _, r := range records {
		fmt.Fprintf(p.w, "%s %s\n", p.statusTag(r), r.Path)

		if r.Target == nil {
			fmt.Fprintf(p.w, "       no target time inferred\n")
		} else {
			fmt.Fprintf(p.w, "       %s %s   (%s)\n",
				p.label("target:"), r.Target.Format(timeLayout), r.TargetReason)
		}
		fmt.Fprintf(p.w, "       %s %s\n", p.label("mtime :"), r.ModTime.Format(timeLayout))
		if r.Ref.Create != nil {
			fmt.Fprintf(p.w, "       %s %s\n", p.label("ctime :"), r.Ref.Create.Format(timeLayout))
		}
		if r.Ref.Write != nil {
			fmt.Fprintf(p.w, "       %s %s\n", p.label("wtime :"), r.Ref.Write.Format(timeLayout))
		}
		fmt.Fprintln(p.w, "----")
	}
}

// PrintSummary writes aggregate counts plus a per-reason tally in
// first-seen order.
func (p *Printer) PrintSummary(records []*timeline.Record, stats timeline.Stats) {
	fmt.Fprintln(p.w)
	p.printCount("Files", stats.Total)
	p.printCount("Anchors (with shot time)", stats.Anchors)
	p.printCount("Overridden by filename", stats.Overridden)
	p.printCount("Filled (inferred target)", stats.Filled)
	p.printCount("Skipped (no target)", stats.Skipped)

	reasons := tallyReasons(records)
	if reasons.Len() == 0 {
		return
	}
	fmt.Fprintln(p.w, "\nBy reason:")
	for el := reasons.Front(); el != nil; el = el.Next() {
		fmt.Fprintf(p.w, "  %s %d\n", runewidth.FillRight(el.Key, 45), el.Value)
	}
}

// PrintApplySummary writes the write-side counters after a non-dry run.
func (p *Printer) PrintApplySummary(exifWrites, timeSyncs, verifyFailures int) {
	fmt.Fprintln(p.w)
	p.printCount("EXIF updated (missing-only)", exifWrites)
	p.printCount("Filesystem times updated", timeSyncs)
	if verifyFailures > 0 {
		msg := fmt.Sprintf("Verification mismatches: %d", verifyFailures)
		if p.color {
			msg = color.Red.Sprint(msg)
		}
		fmt.Fprintln(p.w, msg)
	}
}

func (p *Printer) printCount(label string, n int) {
	fmt.Fprintf(p.w, "%s %d\n", runewidth.FillRight(label+":", 30), n)
}

// statusTag renders the record state marker, matching widths so paths
// line up.
func (p *Printer) statusTag(r *timeline.Record) string {
	switch {
	case r.Target == nil:
		if p.color {
			return color.Red.Sprint("[SKIP]")
		}
		return "[SKIP]"
	case r.HasAnchor():
		if p.color {
			return color.Green.Sprint("[OK]  ")
		}
		return "[OK]  "
	default:
		if p.color {
			return color.Yellow.Sprint("[FILL]")
		}
		return "[FILL]"
	}
}

func (p *Printer) label(s string) string {
	if p.color {
		return color.Gray.Sprint(s)
	}
	return s
}

// tallyReasons counts target reasons preserving first-seen order, so the
// summary reads in pipeline order rather than map order.
func tallyReasons(records []*timeline.Record) *orderedmap.OrderedMap[string, int] {
	m := orderedmap.NewOrderedMap[string, int]()
	for _, r := range records {
		if r.Target == nil || r.TargetReason == "" {
			continue
		}
		count, _ := m.Get(r.TargetReason)
		m.Set(r.TargetReason, count+1)
	}
	return m
}

// FormatTime renders a nullable time for tabular output.
func FormatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(timeLayout)
}
