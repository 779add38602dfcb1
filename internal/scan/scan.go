// Package scan collects media files for the resolution pipeline.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mediatools/shottime/internal/fsattr"
	"github.com/mediatools/shottime/internal/timeline"
)

// Options controls collection.
type Options struct {
	Recursive       bool
	PhotoExtensions []string
	VideoExtensions []string
}

// Collect gathers media files under root (or root itself when it is a
// single file) into timeline records with their filesystem timestamps
// populated. Unreadable entries are skipped, not fatal.
func Collect(root string, opts Options) ([]*timeline.Record, error) {
	exts := normalizeExts(append(opts.PhotoExtensions, opts.VideoExtensions...))

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root %s: %w", root, err)
	}

	if info.Mode().IsRegular() {
		if !exts[strings.ToLower(filepath.Ext(root))] {
			return nil, nil
		}
		r, err := newRecord(root)
		if err != nil {
			return nil, err
		}
		return []*timeline.Record{r}, nil
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is neither file nor directory", root)
	}

	var records []*timeline.Record
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if d.IsDir() {
			if !opts.Recursive && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !exts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		r, recErr := newRecord(path)
		if recErr != nil {
			return nil // raced deletion or permission change
		}
		records = append(records, r)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk %s: %w", root, walkErr)
	}
	return records, nil
}

func newRecord(path string) (*timeline.Record, error) {
	times, err := fsattr.Stat(path)
	if err != nil {
		return nil, err
	}
	return &timeline.Record{
		Path:    path,
		ModTime: times.Mod,
		Ref: timeline.ReferenceTimes{
			Create: times.Change,
			Write:  times.Write,
		},
	}, nil
}

func normalizeExts(exts []string) map[string]bool {
	m := make(map[string]bool, len(exts))
	for _, ext := range exts {
		e := strings.TrimSpace(strings.ToLower(ext))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		m[e] = true
	}
	return m
}
