package skills

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jfelix/resume-matcher/internal/types"
)

// Taxonomy normalizes and categorizes skills against an immutable
// Vocabulary. Construct once, share freely; it has no mutable state.
type Taxonomy struct {
	vocab         *Vocabulary
	categoryOrder []string
	scanTerms     []string
	scanPatterns  map[string]*regexp.Regexp
}

// NewTaxonomy builds a taxonomy over the given vocabulary. Pass
// DefaultVocabulary() for the built-in one.
func NewTaxonomy(vocab *Vocabulary) *Taxonomy {
	t := &Taxonomy{
		vocab: vocab,
		categoryOrder: []string{
			CategoryProgramming, CategoryFrameworks, CategoryDatabases,
			CategoryCloud, CategoryTools,
		},
		scanPatterns: make(map[string]*regexp.Regexp),
	}

	// Scan terms are every alias plus every category keyword, longest first
	// so "google cloud platform" wins over "google cloud".
	termSet := make(map[string]bool)
	for alias := range vocab.Aliases {
		termSet[alias] = true
	}
	for _, keywords := range vocab.Categories {
		for _, keyword := range keywords {
			termSet[strings.ToLower(keyword)] = true
		}
	}
	for term := range termSet {
		t.scanTerms = append(t.scanTerms, term)
		t.scanPatterns[term] = termPattern(term)
	}
	sort.Slice(t.scanTerms, func(i, j int) bool {
		if len(t.scanTerms[i]) != len(t.scanTerms[j]) {
			return len(t.scanTerms[i]) > len(t.scanTerms[j])
		}
		return t.scanTerms[i] < t.scanTerms[j]
	})

	return t
}

// Canonical maps a raw skill token to its canonical name. Unknown tokens are
// trimmed and title-cased when single lowercase words, otherwise returned
// as-is; they stay valid technical skills, just uncategorized.
func (t *Taxonomy) Canonical(skill string) string {
	trimmed := strings.TrimSpace(skill)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := t.vocab.Aliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	// Single all-lowercase words get an initial capital so "microservices"
	// and "Microservices" collapse to one canonical token.
	if !strings.Contains(trimmed, " ") && trimmed == strings.ToLower(trimmed) {
		return strings.ToUpper(trimmed[:1]) + trimmed[1:]
	}
	return trimmed
}

// Categorize normalizes, deduplicates, and buckets raw skill tokens, and
// independently scans sourceText for soft-skill mentions. A canonical skill
// lands in every technical sub-bucket whose keyword list contains it;
// unmatched skills remain only in the flat Technical list.
func (t *Taxonomy) Categorize(rawSkills []string, sourceText string) types.SkillSet {
	seen := make(map[string]bool)
	var technical []string
	for _, raw := range rawSkills {
		canonical := t.Canonical(raw)
		if canonical == "" || seen[canonical] {
			continue
		}
		seen[canonical] = true
		technical = append(technical, canonical)
	}

	set := types.SkillSet{
		Technical: technical,
		Soft:      t.scanSoftSkills(sourceText),
	}

	buckets := map[string]*[]string{
		CategoryProgramming: &set.Programming,
		CategoryFrameworks:  &set.Frameworks,
		CategoryDatabases:   &set.Databases,
		CategoryCloud:       &set.Cloud,
		CategoryTools:       &set.Tools,
	}
	for _, skill := range technical {
		for _, category := range t.categoryOrder {
			if t.inCategory(skill, category) {
				bucket := buckets[category]
				*bucket = append(*bucket, skill)
			}
		}
	}

	return set
}

// ScanText finds known vocabulary terms in free text and returns their
// canonical names, deduplicated in first-match order. Used when no external
// skill labels are available.
func (t *Taxonomy) ScanText(text string) []string {
	seen := make(map[string]bool)
	var found []string
	for _, term := range t.scanTerms {
		if !t.scanPatterns[term].MatchString(text) {
			continue
		}
		canonical := t.Canonical(term)
		if canonical == "" || seen[canonical] {
			continue
		}
		seen[canonical] = true
		found = append(found, canonical)
	}
	return found
}

func (t *Taxonomy) inCategory(skill, category string) bool {
	for _, keyword := range t.vocab.Categories[category] {
		if strings.EqualFold(skill, keyword) {
			return true
		}
	}
	return false
}

func (t *Taxonomy) scanSoftSkills(text string) []string {
	lower := strings.ToLower(text)
	var soft []string
	for _, skill := range t.vocab.SoftSkills {
		if strings.Contains(lower, skill) {
			soft = append(soft, titleCase(skill))
		}
	}
	return soft
}

// termPattern compiles a case-insensitive match for term. Word boundaries are
// only anchored against word characters; terms like "c++" end mid-symbol and
// \b would never fire there.
func termPattern(term string) *regexp.Regexp {
	pattern := "(?i)"
	if isWordByte(term[0]) {
		pattern += `\b`
	}
	pattern += regexp.QuoteMeta(term)
	if isWordByte(term[len(term)-1]) {
		pattern += `\b`
	}
	return regexp.MustCompile(pattern)
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
