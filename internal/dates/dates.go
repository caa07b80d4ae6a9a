// Package dates provides date-string normalization helpers for user-entered dates.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var datePattern = regexp.MustCompile(`^(\d{4})/(\d{1,2})/(\d{1,2})$`)

// NormalizeDateString converts a free-form date string into canonical
// "YYYY-MM-DD" form. It accepts ".", "-" and "/" as separators and requires
// a year/month/day shape. Values that do not name a real calendar date
// (e.g. "2024/2/30") are rejected. The empty string is returned for any
// input that fails to parse or validate; callers must treat it as "invalid",
// never as a zero date.
func NormalizeDateString(value string) string {
	normalized := strings.TrimSpace(value)
	if normalized == "" {
		return ""
	}
	normalized = strings.ReplaceAll(normalized, ".", "/")
	normalized = strings.ReplaceAll(normalized, "-", "/")

	m := datePattern.FindStringSubmatch(normalized)
	if m == nil {
		return ""
	}

	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	d, _ := strconv.Atoi(m[3])

	// time.Date normalizes out-of-range components (Feb 30 becomes Mar 1),
	// so round-trip and compare to catch impossible dates.
	dt := time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.Local)
	if dt.Year() != y || dt.Month() != time.Month(mo) || dt.Day() != d {
		return ""
	}

	return fmt.Sprintf("%04d-%02d-%02d", y, mo, d)
}

// ParseDateInput parses a free-form date string into a time.Time.
// Returns the zero time and false if the input is not a valid date.
func ParseDateInput(value string) (time.Time, bool) {
	normalized := NormalizeDateString(value)
	if normalized == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", normalized, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ToSlashDate rewrites "-" separators as "/" for display. It does not validate.
func ToSlashDate(value string) string {
	return strings.ReplaceAll(value, "-", "/")
}

// ToYmd formats a date as zero-padded "YYYY-MM-DD" using its local calendar fields.
func ToYmd(date time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", date.Year(), int(date.Month()), date.Day())
}
