// Package fixer coordinates a full shot-time run: collect media files,
// attribute anchors, resolve targets, and apply them to metadata and
// filesystem times.
package fixer

import (
	"context"
	"fmt"
	"time"

	"github.com/mediatools/shottime/internal/config"
	"github.com/mediatools/shottime/internal/fsattr"
	"github.com/mediatools/shottime/internal/history"
	"github.com/mediatools/shottime/internal/logger"
	"github.com/mediatools/shottime/internal/meta"
	"github.com/mediatools/shottime/internal/namedate"
	"github.com/mediatools/shottime/internal/scan"
	"github.com/mediatools/shottime/internal/timeline"
)

// Result collects everything a run produced.
type Result struct {
	Root        string
	StartedAt   time.Time
	CompletedAt time.Time
	Duration    time.Duration
	Records     []*timeline.Record
	Stats       timeline.Stats

	DryRun        bool
	ExifWrites    int
	TimeSyncs     int
	VerifyFailed  int
	ApplyFailures []error
}

// Fixer coordinates one run. Adapter functions are swappable so tests can
// run without real EXIF payloads.
type Fixer struct {
	cfg    *config.Config
	logger *logger.Logger
	store  *history.Store // nil disables journaling

	collect   func(root string, opts scan.Options) ([]*timeline.Record, error)
	readShot  func(path string) (time.Time, bool)
	parseName func(path string) (time.Time, bool)
	writeExif func(path string, t time.Time) (bool, error)
	setTimes  func(path string, t time.Time) error
	statMod   func(path string) (time.Time, error)
}

// New creates a Fixer wired to the real filesystem and metadata adapters.
func New(cfg *config.Config, log *logger.Logger, store *history.Store) *Fixer {
	if log == nil {
		log = logger.NewDefault()
	}
	return &Fixer{
		cfg:       cfg,
		logger:    log,
		store:     store,
		collect:   scan.Collect,
		readShot:  meta.ShotTimeFile,
		parseName: namedate.Parse,
		writeExif: meta.WriteShotTimeIfMissing,
		setTimes:  fsattr.SetTimes,
		statMod: func(path string) (time.Time, error) {
			times, err := fsattr.Stat(path)
			if err != nil {
				return time.Time{}, err
			}
			return times.Mod, nil
		},
	}
}

// Plan collects and resolves without touching any file. The returned
// records are in timeline order.
func (f *Fixer) Plan(ctx context.Context, root string) ([]*timeline.Record, timeline.Stats, error) {
	scanOpts := scan.Options{
		Recursive:       f.cfg.Scan.Recursive,
		PhotoExtensions: f.cfg.Scan.PhotoExtensions,
		VideoExtensions: f.cfg.Scan.VideoExtensions,
	}

	records, err := f.collect(root, scanOpts)
	if err != nil {
		return nil, timeline.Stats{}, fmt.Errorf("collect %s: %w", root, err)
	}
	f.logger.Infow("Collected media files", "root", root, "files", len(records))

	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return nil, timeline.Stats{}, err
		}
		f.attribute(r)
	}

	stats := timeline.Resolve(records, f.cfg.Resolve.TimelineOptions())
	f.logger.Infow("Resolved targets",
		"total", stats.Total,
		"anchors", stats.Anchors,
		"overridden", stats.Overridden,
		"filled", stats.Filled,
		"skipped", stats.Skipped,
	)
	return records, stats, nil
}

// attribute populates the record's filename time and anchor. Metadata
// wins; the filename serves as anchor only when enabled and metadata is
// silent.
func (f *Fixer) attribute(r *timeline.Record) {
	if t, ok := f.parseName(r.Path); ok {
		nt := t
		r.FilenameTime = &nt
	}

	if t, ok := f.readShot(r.Path); ok {
		r.Anchor = &timeline.Anchor{Time: t, Source: timeline.SourceMetadata}
		return
	}
	if f.cfg.Resolve.FilenameFallback && r.FilenameTime != nil {
		r.Anchor = &timeline.Anchor{Time: *r.FilenameTime, Source: timeline.SourceFilename}
	}
}

// Run executes a full pass. With dryRun set nothing is written and the
// history journal records the run as a dry one.
func (f *Fixer) Run(ctx context.Context, root string, dryRun bool) (*Result, error) {
	result := &Result{Root: root, StartedAt: time.Now(), DryRun: dryRun}

	records, stats, err := f.Plan(ctx, root)
	if err != nil {
		return nil, err
	}
	result.Records = records
	result.Stats = stats

	var runID int64
	if f.store != nil {
		runID, err = f.store.BeginRun(ctx, root, dryRun)
		if err != nil {
			// Journaling failure must not block the fix itself.
			f.logger.Warnw("History journal unavailable", "error", err)
			f.store = nil
		}
	}

	if !dryRun {
		f.apply(ctx, runID, result)
	}

	if f.store != nil {
		if err := f.store.FinishRun(ctx, runID, stats, result.ExifWrites, result.TimeSyncs); err != nil {
			f.logger.Warnw("Failed to finalize history run", "run", runID, "error", err)
		}
	}

	result.CompletedAt = time.Now()
	result.Duration = result.CompletedAt.Sub(result.StartedAt)
	return result, nil
}

// apply writes targets out: EXIF tags for files whose metadata had no
// shot time, then filesystem times, then verifies the sync took.
func (f *Fixer) apply(ctx context.Context, runID int64, result *Result) {
	for _, r := range result.Records {
		if err := ctx.Err(); err != nil {
			result.ApplyFailures = append(result.ApplyFailures, err)
			return
		}
		if r.Target == nil {
			continue
		}

		log := f.logger.WithFile(r.Path)

		metadataHadShot := r.Anchor != nil && r.Anchor.Source == timeline.SourceMetadata
		if f.cfg.Apply.WriteExifIfMissing && !metadataHadShot {
			changed, err := f.writeExif(r.Path, *r.Target)
			switch {
			case err != nil:
				log.Warnw("EXIF write failed", "error", err)
				result.ApplyFailures = append(result.ApplyFailures, fmt.Errorf("exif %s: %w", r.Path, err))
			case changed:
				result.ExifWrites++
			}
		}

		if f.cfg.Apply.SyncFileTimes {
			if err := f.setTimes(r.Path, *r.Target); err != nil {
				log.Warnw("File time sync failed", "error", err)
				result.ApplyFailures = append(result.ApplyFailures, fmt.Errorf("sync %s: %w", r.Path, err))
				continue
			}
			result.TimeSyncs++

			if !f.verifySync(r.Path, *r.Target) {
				log.Warnw("File time verification mismatch", "target", r.Target)
				result.VerifyFailed++
			}
		}

		if f.store != nil {
			if err := f.store.RecordFile(ctx, runID, r.Path, r.ModTime, *r.Target, r.TargetReason); err != nil {
				log.Warnw("Failed to journal file", "error", err)
			}
		}
	}
}

// verifySync re-reads the modification time and checks it landed on the
// target, tolerating sub-second truncation by the filesystem.
func (f *Fixer) verifySync(path string, target time.Time) bool {
	mod, err := f.statMod(path)
	if err != nil {
		return false
	}
	diff := mod.Sub(target)
	if diff < 0 {
		diff = -diff
	}
	return diff < time.Second
}
