package movie

import (
	"strconv"
	"time"
)

// ValidReleaseDate reports whether s is acceptable as a release date: empty,
// or a real YYYY-MM-DD calendar date with a year in [1800, 2100].
func ValidReleaseDate(s string) bool {
	if s == "" {
		return true
	}
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	// time.Parse rejects days that do not exist on the calendar, e.g. a
	// February 30th.
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return false
	}
	year, err := strconv.Atoi(s[:4])
	if err != nil {
		return false
	}
	return year >= 1800 && year <= 2100
}
