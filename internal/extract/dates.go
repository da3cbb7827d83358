package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateRange is a textual employment date range pulled from a resume.
// End is empty for an open-ended range ("Jan 2020 - Present" keeps the
// "Present" token; plain "Jan 2020" has no End at all).
type DateRange struct {
	Start string
	End   string
}

var dateRangePattern = regexp.MustCompile(
	`(?i)\b((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4})\s*(?:[-–]|to|till)?\s*((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}|Present|Current)?\b`)

var yearPattern = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

// DateRanges returns month-year employment ranges in document order.
// Duplicate ranges are kept: two roles can legitimately share dates.
func DateRanges(text string) []DateRange {
	var ranges []DateRange
	for _, match := range dateRangePattern.FindAllStringSubmatch(text, -1) {
		ranges = append(ranges, DateRange{
			Start: strings.TrimSpace(match[1]),
			End:   strings.TrimSpace(match[2]),
		})
	}
	return ranges
}

// Years returns all plausible 4-digit years (1900-2099) in document order,
// deduplicated.
func Years(text string) []string {
	seen := make(map[string]bool)
	var years []string
	for _, year := range yearPattern.FindAllString(text, -1) {
		if seen[year] {
			continue
		}
		seen[year] = true
		years = append(years, year)
	}
	return years
}

// Year extracts the 4-digit year from a free-form date string.
// "Present" and "current" resolve to now's year. Returns 0 when no year is
// found.
func Year(date string, now time.Time) int {
	trimmed := strings.ToLower(strings.TrimSpace(date))
	if trimmed == "present" || trimmed == "current" {
		return now.Year()
	}
	match := yearPattern.FindString(date)
	if match == "" {
		return 0
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return year
}
