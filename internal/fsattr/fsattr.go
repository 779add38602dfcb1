// Package fsattr reads and writes filesystem timestamps for media files.
// It surfaces the platform's secondary timestamps where available; on
// platforms without them only the modification time is reported.
package fsattr

import (
	"fmt"
	"os"
	"time"
)

// Times holds the filesystem timestamps of one file.
type Times struct {
	Mod time.Time

	// Change is the inode change time where the platform exposes it,
	// otherwise nil. It serves as a secondary reference for drift checks.
	Change *time.Time

	// Write is a platform write time distinct from Mod, where one exists.
	Write *time.Time
}

// Stat returns the file's timestamps.
func Stat(path string) (Times, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Times{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return timesFromInfo(fi), nil
}

// SetTimes applies t to the file's access and modification times.
func SetTimes(path string, t time.Time) error {
	if err := os.Chtimes(path, t, t); err != nil {
		return fmt.Errorf("set times %s: %w", path, err)
	}
	return nil
}
