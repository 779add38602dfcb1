package meta

import (
	"fmt"
	"os"
	"path/filepath"

	jpegstructure "github.com/dsoprea/go-jpeg-image-structure/v2"
)

// writeSegments serializes the segment list to a temp file in the same
// directory and renames it over the original, so a failed write never
// leaves a truncated image behind.
func writeSegments(sl *jpegstructure.SegmentList, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".shottime-*")
	if err != nil {
		return fmt.Errorf("temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := sl.Write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write jpeg: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp: %w", err)
	}

	if fi, err := os.Stat(path); err == nil {
		_ = os.Chmod(tmpPath, fi.Mode())
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
