// Package classify infers career level, industry, and role labels from
// resume text using deterministic keyword strategies, with room for
// model-backed implementations behind the same interfaces.
package classify

import (
	"strings"

	"github.com/jfelix/resume-matcher/internal/types"
)

// YearsUnknown marks total experience as unavailable to a classifier.
const YearsUnknown = -1.0

// LevelClassifier assigns a career level to resume text. Pass YearsUnknown
// when no experience total could be computed.
type LevelClassifier interface {
	Classify(text string, years float64) types.CareerLevel
}

// LevelKeywords holds the keyword buckets consulted by the keyword
// classifier. Matching is substring containment over lowercased text.
type LevelKeywords struct {
	Executive []string
	Senior    []string
	Mid       []string
	Entry     []string
}

// DefaultLevelKeywords returns the built-in keyword buckets.
func DefaultLevelKeywords() LevelKeywords {
	return LevelKeywords{
		Executive: []string{"ceo", "cto", "cfo", "coo", "president", "executive", "c-level", "vp", "chief"},
		Senior:    []string{"senior", "lead", "principal", "architect", "director", "head of"},
		Mid:       []string{"specialist", "engineer", "analyst", "consultant", "coordinator"},
		Entry:     []string{"junior", "intern", "trainee", "graduate", "assistant"},
	}
}

// KeywordLevelClassifier is the deterministic default LevelClassifier.
// Decision order, first match wins:
//  1. any executive keyword in the text
//  2. experience-years thresholds, when years are known
//  3. keyword buckets in priority order senior, mid, entry
//  4. mid
//
// Explicit years evidence deliberately outranks keyword guesses, which in
// turn outrank the default.
type KeywordLevelClassifier struct {
	keywords LevelKeywords
}

// NewKeywordLevelClassifier builds a classifier over the given buckets.
func NewKeywordLevelClassifier(keywords LevelKeywords) *KeywordLevelClassifier {
	return &KeywordLevelClassifier{keywords: keywords}
}

func (c *KeywordLevelClassifier) Classify(text string, years float64) types.CareerLevel {
	lower := strings.ToLower(text)

	if containsAny(lower, c.keywords.Executive) {
		return types.CareerLevelExecutive
	}

	if years >= 0 {
		switch {
		case years < 2:
			return types.CareerLevelEntry
		case years < 5:
			return types.CareerLevelMid
		case years < 10:
			return types.CareerLevelSenior
		default:
			return types.CareerLevelExecutive
		}
	}

	switch {
	case containsAny(lower, c.keywords.Senior):
		return types.CareerLevelSenior
	case containsAny(lower, c.keywords.Mid):
		return types.CareerLevelMid
	case containsAny(lower, c.keywords.Entry):
		return types.CareerLevelEntry
	}
	return types.CareerLevelMid
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
