package extract

import (
	"regexp"
	"strings"
)

// phonePatterns cover international, North American, Indian, UK, and bare
// ten-digit formats, plus labeled lines ("Phone:", "Mobile:", ...). Ordered
// so the most specific formats win the first-seen position.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+\d{1,3}[-.\s]?\(?\d{1,4}\)?[-.\s]?\d{1,4}[-.\s]?\d{1,9}`),
	regexp.MustCompile(`\(\d{3}\)[-.\s]?\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`\d{3}[-.\s]\d{3}[-.\s]\d{4}`),
	regexp.MustCompile(`\d{5}[-.\s]\d{5}`),
	regexp.MustCompile(`\b\d{10}\b`),
	regexp.MustCompile(`(?i)(?:phone|mobile|cell|tel)\s*[:=]\s*([\d\s\-+()]{7,})`),
}

var nonDigits = regexp.MustCompile(`\D`)

// Phones returns all plausible phone numbers found in text with their
// original formatting, deduplicated on the digit-only form. A candidate is
// valid when its digit-only form has 7 to 15 digits.
func Phones(text string) []string {
	var candidates []string
	for _, pattern := range phonePatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			value := match[0]
			if len(match) > 1 && match[1] != "" {
				value = match[1]
			}
			candidates = append(candidates, value)
		}
	}

	var seen []string
	var phones []string
	for _, candidate := range candidates {
		phone := strings.TrimSpace(candidate)
		digits := nonDigits.ReplaceAllString(phone, "")
		if len(digits) < 7 || len(digits) > 15 || duplicateNumber(seen, digits) {
			continue
		}
		seen = append(seen, digits)
		phones = append(phones, phone)
	}
	return phones
}

// duplicateNumber treats a number as already seen when its digit form
// matches a previous one exactly or differs only by a country-code prefix.
func duplicateNumber(seen []string, digits string) bool {
	for _, prev := range seen {
		if strings.HasSuffix(prev, digits) || strings.HasSuffix(digits, prev) {
			return true
		}
	}
	return false
}
