// Package meta reads and writes shot timestamps in embedded image metadata.
package meta

import (
	"io"
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"github.com/mediatools/shottime/internal/namedate"
)

// exifTimeLayout is the EXIF datetime format; no timezone, interpreted as
// local time.
const exifTimeLayout = "2006:01:02 15:04:05"

// ShotTime extracts the best shot timestamp from an EXIF stream.
// Key priority: DateTimeOriginal, then DateTimeDigitized, then DateTime.
// Implausible values are skipped. Reading is best-effort: malformed or
// EXIF-less streams report not-found rather than an error.
func ShotTime(r io.Reader) (time.Time, bool) {
	x, err := exif.Decode(r)
	if err != nil {
		return time.Time{}, false
	}

	for _, tag := range []exif.FieldName{exif.DateTimeOriginal, exif.DateTimeDigitized, exif.DateTime} {
		if t, ok := timeFromTag(x, tag); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// ShotTimeFile is ShotTime over a file on disk.
func ShotTimeFile(path string) (time.Time, bool) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()
	return ShotTime(f)
}

func timeFromTag(x *exif.Exif, tag exif.FieldName) (time.Time, bool) {
	field, err := x.Get(tag)
	if err != nil {
		return time.Time{}, false
	}

	s, err := field.StringVal()
	if err != nil {
		return time.Time{}, false
	}

	t, err := time.ParseInLocation(exifTimeLayout, s, time.Local)
	if err != nil || !namedate.Plausible(t) {
		return time.Time{}, false
	}
	return t, true
}
