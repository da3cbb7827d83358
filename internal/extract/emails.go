// Package extract provides stateless pattern extractors for contact data in
// raw resume text. All functions are pure: no I/O, no shared state, and
// deduplicated output in first-seen order.
package extract

import (
	"regexp"
	"strings"
)

// emailPatterns are applied in order; labeled variants capture the address in
// group 1 so a "Email: foo@bar.com" line is found even when surrounding
// punctuation breaks the bare pattern.
var emailPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`),
	regexp.MustCompile(`(?i)e-?mail\s*[:=]\s*([A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,})`),
}

// placeholderDomains are never real contact addresses.
var placeholderDomains = []string{"example.com", "test.com", "email.com"}

// Emails returns all valid email addresses found in text, lowercased and
// deduplicated. A value is kept only if it contains exactly one "@", a "."
// in the domain part, and no placeholder domain.
func Emails(text string) []string {
	var candidates []string
	for _, pattern := range emailPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			value := match[0]
			if len(match) > 1 && match[1] != "" {
				value = match[1]
			}
			candidates = append(candidates, value)
		}
	}

	seen := make(map[string]bool)
	var emails []string
	for _, candidate := range candidates {
		email := strings.ToLower(strings.TrimSpace(candidate))
		if !validEmail(email) || seen[email] {
			continue
		}
		seen[email] = true
		emails = append(emails, email)
	}
	return emails
}

func validEmail(email string) bool {
	if strings.Count(email, "@") != 1 {
		return false
	}
	domain := email[strings.Index(email, "@")+1:]
	if !strings.Contains(domain, ".") {
		return false
	}
	for _, placeholder := range placeholderDomains {
		if domain == placeholder {
			return false
		}
	}
	return true
}
