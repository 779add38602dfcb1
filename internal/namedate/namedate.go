// Package namedate parses shot timestamps embedded in media filenames,
// e.g. Screenshot_20211230_215425.png or 2021-12-30_21-54-25.jpg.
package namedate

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var patterns = []*regexp.Regexp{
	// 20211230_215425, 20211230-215425, 20211230215425
	regexp.MustCompile(`(\d{4})(\d{2})(\d{2})[_-]?(\d{2})(\d{2})(\d{2})`),
	// 2021-12-30_21-54-25, 2021-12-30 21_54_25 and similar
	regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})[_\s-]?(\d{2})[-_]?(\d{2})[-_]?(\d{2})`),
}

// Parse extracts a plausible timestamp from the file's base name. The
// extension is stripped first so digits in it cannot match. Timestamps are
// interpreted in local time.
func Parse(path string) (time.Time, bool) {
	return ParseIn(path, time.Local, time.Now())
}

// ParseIn is Parse with an explicit location and reference time for the
// plausibility window.
func ParseIn(path string, loc *time.Location, now time.Time) (time.Time, bool) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	for _, re := range patterns {
		m := re.FindStringSubmatch(stem)
		if m == nil {
			continue
		}

		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		d, _ := strconv.Atoi(m[3])
		h, _ := strconv.Atoi(m[4])
		mi, _ := strconv.Atoi(m[5])
		s, _ := strconv.Atoi(m[6])

		t := time.Date(y, time.Month(mo), d, h, mi, s, 0, loc)
		if PlausibleAt(t, now) {
			return t, true
		}
	}
	return time.Time{}, false
}

// Plausible reports whether t falls in the accepted shot-time window:
// not before 1980 and at most one day in the future.
func Plausible(t time.Time) bool {
	return PlausibleAt(t, time.Now())
}

// PlausibleAt is Plausible against an explicit reference time.
func PlausibleAt(t, now time.Time) bool {
	floor := time.Date(1980, 1, 1, 0, 0, 0, 0, t.Location())
	return !t.Before(floor) && !t.After(now.Add(24*time.Hour))
}
