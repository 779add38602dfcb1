package meta

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	exif "github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
	jpegstructure "github.com/dsoprea/go-jpeg-image-structure/v2"
)

// shotTimeTags are the EXIF datetime tags the writer fills, with the IFD
// each lives in.
var shotTimeTags = []struct {
	ifdPath string
	name    string
}{
	{"IFD/Exif", "DateTimeOriginal"},
	{"IFD/Exif", "DateTimeDigitized"},
	{"IFD0", "DateTime"},
}

// WriteShotTimeIfMissing fills the shot-time EXIF tags that are absent,
// leaving existing values untouched, and rewrites the file in place.
// Returns whether anything was written. Only JPEG files are supported;
// other formats report (false, nil).
func WriteShotTimeIfMissing(path string, t time.Time) (bool, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".jpg" && ext != ".jpeg" {
		return false, nil
	}

	jmp := jpegstructure.NewJpegMediaParser()
	intfc, err := jmp.ParseFile(path)
	if err != nil {
		return false, fmt.Errorf("parse jpeg %s: %w", path, err)
	}
	sl := intfc.(*jpegstructure.SegmentList)

	rootIb, err := sl.ConstructExifBuilder()
	if err != nil {
		// No EXIF block yet; start from an empty one.
		im, mapErr := exifcommon.NewIfdMappingWithStandard()
		if mapErr != nil {
			return false, fmt.Errorf("ifd mapping: %w", mapErr)
		}
		rootIb = exif.NewIfdBuilder(im, exif.NewTagIndex(),
			exifcommon.IfdStandardIfdIdentity, exifcommon.EncodeDefaultByteOrder)
	}

	value := exifcommon.ExifFullTimestampString(t)
	changed := false

	for _, tag := range shotTimeTags {
		ib, err := exif.GetOrCreateIbFromRootIb(rootIb, tag.ifdPath)
		if err != nil {
			return false, fmt.Errorf("ifd %s: %w", tag.ifdPath, err)
		}
		if _, err := ib.FindTagWithName(tag.name); err == nil {
			continue // present, never overwrite
		}
		if err := ib.SetStandardWithName(tag.name, value); err != nil {
			return false, fmt.Errorf("set %s: %w", tag.name, err)
		}
		changed = true
	}

	if !changed {
		return false, nil
	}

	if err := sl.SetExif(rootIb); err != nil {
		return false, fmt.Errorf("set exif: %w", err)
	}
	if err := writeSegments(sl, path); err != nil {
		return false, err
	}
	return true, nil
}
