// Package experience reconstructs a work history from resume text and
// aggregates it into a total-years figure.
package experience

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/jfelix/resume-matcher/internal/extract"
	"github.com/jfelix/resume-matcher/internal/sections"
	"github.com/jfelix/resume-matcher/internal/skills"
	"github.com/jfelix/resume-matcher/internal/types"
)

const (
	// maxEntries caps how many work history entries are reconstructed.
	maxEntries = 7
	// defaultTitle is used when no title line could be paired with a company.
	defaultTitle = "Position"
	// yearsPerJobEstimate backs the fallback when no entry carries a usable
	// date pair. An explicit, documented approximation rather than zero.
	yearsPerJobEstimate = 2.5
)

var (
	titleKeywords = []string{
		"engineer", "developer", "programmer", "architect", "lead", "senior", "junior",
		"manager", "director", "analyst", "scientist", "designer", "consultant",
		"specialist", "administrator", "coordinator", "executive", "officer", "head",
		"intern", "associate", "principal", "staff", "team lead", "tech lead",
		"full stack", "frontend", "backend", "devops", "data", "software", "web",
	}

	achievementPattern = regexp.MustCompile(
		`(?i)(increased|reduced|improved|managed|led|developed|built|created|designed|implemented|launched|delivered|achieved|grew|saved|optimized|streamlined)` +
			`[^.!?\n]*?(\d+%|\$\d+[KMB]?|\d+\s*(?:people|users|clients|projects|systems|applications|million|thousand))`)

	monthYearPattern = regexp.MustCompile(
		`(?i)\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}`)
	yearSpanPattern = regexp.MustCompile(`\d{4}\s*-\s*\d{4}`)
)

// Extractor assembles work history entries from resume text plus the
// organization entities recognized for the same document.
type Extractor struct {
	taxonomy *skills.Taxonomy
}

// NewExtractor builds an extractor that uses the given taxonomy for
// per-entry technology detection.
func NewExtractor(taxonomy *skills.Taxonomy) *Extractor {
	return &Extractor{taxonomy: taxonomy}
}

// Extract pairs organizations with title lines, date ranges, achievement
// statements, and detected technologies. Organizations drive the entry count;
// without any there is no work history. Alignment between the parallel lists
// is positional and therefore approximate.
func (e *Extractor) Extract(text string, organizations []string) []types.WorkExperience {
	body := sections.FindOrAll(text, sections.Experience)

	ranges := extract.DateRanges(body)
	titles := titleLines(body)
	achievements := achievementStatements(body)
	technologies := e.taxonomy.ScanText(body)
	if len(technologies) > 5 {
		technologies = technologies[:5]
	}

	if len(organizations) > maxEntries {
		organizations = organizations[:maxEntries]
	}

	var history []types.WorkExperience
	for i, org := range organizations {
		entry := types.WorkExperience{
			Company: org,
			Title:   defaultTitle,
		}
		if i < len(titles) {
			entry.Title = titles[i]
		}
		if i < len(ranges) {
			entry.StartDate = ranges[i].Start
			entry.EndDate = ranges[i].End
		}
		// Two achievement statements per entry, in document order.
		if lo := i * 2; lo < len(achievements) {
			hi := lo + 2
			if hi > len(achievements) {
				hi = len(achievements)
			}
			entry.Achievements = achievements[lo:hi]
		}
		if i == 0 {
			entry.Technologies = technologies
		}
		history = append(history, entry)
	}
	return history
}

// TotalYears sums max(0, endYear-startYear) across entries, resolving
// "present" and "current" end dates against now. When no entry yields a
// usable year pair, it estimates from the entry count instead of reporting
// zero. The result is rounded to one decimal.
func TotalYears(history []types.WorkExperience, now time.Time) float64 {
	var total float64
	for _, entry := range history {
		if entry.StartDate == "" {
			continue
		}
		startYear := extract.Year(entry.StartDate, now)
		endYear := now.Year()
		if entry.EndDate != "" {
			endYear = extract.Year(entry.EndDate, now)
		}
		if startYear == 0 || endYear == 0 {
			continue
		}
		if endYear > startYear {
			total += float64(endYear - startYear)
		}
	}

	if total == 0 && len(history) > 0 {
		total = float64(len(history)) * yearsPerJobEstimate
	}
	return math.Round(total*10) / 10
}

// titleLines returns lines that look like job titles: they mention a title
// keyword and, once dates are stripped, land in a plausible length band.
func titleLines(text string) []string {
	var titles []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !containsKeyword(strings.ToLower(line), titleKeywords) {
			continue
		}
		clean := monthYearPattern.ReplaceAllString(line, "")
		clean = yearSpanPattern.ReplaceAllString(clean, "")
		clean = strings.Trim(clean, " -–|")
		if len(clean) > 20 && len(clean) < 100 {
			titles = append(titles, clean)
		}
		if len(titles) == maxEntries {
			break
		}
	}
	return titles
}

// achievementStatements finds verb-plus-metric statements such as
// "reduced latency by 40%" and returns them as "verb metric" strings.
func achievementStatements(text string) []string {
	var statements []string
	for _, match := range achievementPattern.FindAllStringSubmatch(text, -1) {
		statements = append(statements, match[1]+" "+strings.TrimSpace(match[2]))
	}
	return statements
}

func containsKeyword(haystack string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(haystack, keyword) {
			return true
		}
	}
	return false
}
