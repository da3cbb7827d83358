// Package education extracts degree, institution, and certification data
// from resume text.
package education

import (
	"regexp"
	"strings"

	"github.com/jfelix/resume-matcher/internal/extract"
	"github.com/jfelix/resume-matcher/internal/sections"
	"github.com/jfelix/resume-matcher/internal/types"
)

// maxEntries caps how many education entries are reconstructed.
const maxEntries = 5

var (
	degreePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(Bachelor(?:'s)?|B\.?S\.?|B\.?A\.?|B\.?Tech\.?|B\.?E\.?)\s+(?:of|in|degree)?\s*([^,\n.]+)`),
		regexp.MustCompile(`(?i)\b(Master(?:'s)?|M\.?S\.?|M\.?A\.?|M\.?Tech\.?|MBA)\s+(?:of|in|degree)?\s*([^,\n.]+)`),
		regexp.MustCompile(`(?i)\b(Ph\.?D\.?|Doctorate|Doctoral)\s+(?:of|in|degree)?\s*([^,\n.]+)`),
		regexp.MustCompile(`(?i)\b(Associate(?:'s)?|A\.?S\.?|A\.?A\.?)\s+(?:of|in|degree)?\s*([^,\n.]+)`),
	}

	gpaPattern = regexp.MustCompile(`(?i)(?:GPA|CGPA|Grade)[\s:]*(\d\.\d+)\s*(?:/\s*(\d\.\d+))?`)

	institutionKeywords = []string{"university", "college", "institute", "school", "academy"}
	honorKeywords       = []string{"certified", "certification", "certificate", "license", "credential", "honors", "cum laude", "dean's list"}

	advancedDegreePattern = regexp.MustCompile(`(?i)\b(master|m\.?s\.?|m\.?a\.?|mba|ph\.?d|doctorate|doctoral)\b`)
)

// Extract reconstructs education entries from resume text plus the
// organization entities recognized for the same document. Parallel lists
// (degrees, institutions, years, GPAs) are aligned positionally.
func Extract(text string, organizations []string) []types.Education {
	body := sections.FindOrAll(text, sections.Education)

	degrees, fields := degreeMatches(body)
	institutions := institutionNames(organizations)
	years := extract.Years(body)
	gpas := gpaValues(body)
	honors := honorLines(body)

	count := len(degrees)
	if len(institutions) > count {
		count = len(institutions)
	}
	if count > maxEntries {
		count = maxEntries
	}

	var entries []types.Education
	for i := 0; i < count; i++ {
		entry := types.Education{}
		if i < len(degrees) {
			entry.Degree = degrees[i]
			entry.Field = fields[i]
		}
		if i < len(institutions) {
			entry.Institution = institutions[i]
		}
		if i < len(years) {
			entry.GraduationYear = years[i]
		}
		if i < len(gpas) {
			entry.GPA = gpas[i]
		}
		if i == 0 {
			entry.Honors = honors
		}
		if entry.Degree == "" && entry.Institution == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// HasDegree reports whether any entry names a degree.
func HasDegree(entries []types.Education) bool {
	for _, entry := range entries {
		if entry.Degree != "" {
			return true
		}
	}
	return false
}

// HasAdvancedDegree reports whether any entry names a master's, MBA, or
// doctoral degree.
func HasAdvancedDegree(entries []types.Education) bool {
	for _, entry := range entries {
		if advancedDegreePattern.MatchString(entry.Degree) {
			return true
		}
	}
	return false
}

func degreeMatches(text string) (degrees, fields []string) {
	for _, pattern := range degreePatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			degrees = append(degrees, strings.TrimSpace(match[1]))
			fields = append(fields, strings.TrimSpace(match[2]))
		}
	}
	return degrees, fields
}

// institutionNames keeps only organizations that look like schools.
func institutionNames(organizations []string) []string {
	var institutions []string
	for _, org := range organizations {
		lower := strings.ToLower(org)
		for _, keyword := range institutionKeywords {
			if strings.Contains(lower, keyword) {
				institutions = append(institutions, org)
				break
			}
		}
	}
	return institutions
}

func gpaValues(text string) []string {
	var gpas []string
	for _, match := range gpaPattern.FindAllStringSubmatch(text, -1) {
		if match[2] != "" {
			gpas = append(gpas, match[1]+"/"+match[2])
		} else {
			gpas = append(gpas, match[1])
		}
	}
	return gpas
}

// honorLines returns certification and distinction lines of plausible length.
func honorLines(text string) []string {
	var honors []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		for _, keyword := range honorKeywords {
			if strings.Contains(lower, keyword) {
				if len(line) > 10 && len(line) < 150 {
					honors = append(honors, line)
				}
				break
			}
		}
	}
	return honors
}
