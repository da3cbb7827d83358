// Package sections segments resume text into labeled regions using
// header-line heuristics. Segmentation is best-effort: when no header is
// found callers fall back to scanning the whole document.
package sections

import (
	"strings"
)

// Canonical section names.
const (
	Summary        = "summary"
	Experience     = "experience"
	Education      = "education"
	Skills         = "skills"
	Projects       = "projects"
	Certifications = "certifications"
)

// maxHeaderLen is the longest a line can be and still count as a header.
const maxHeaderLen = 50

// headerAliases maps canonical section names to the tokens that mark their
// headers. Kept as data so tenant-specific resume layouts can extend it.
var headerAliases = map[string][]string{
	Summary:        {"summary", "objective", "profile", "about", "introduction"},
	Experience:     {"experience", "work history", "employment", "professional experience", "work experience"},
	Education:      {"education", "academic", "qualification", "educational background"},
	Skills:         {"skills", "technical skills", "core competencies", "technologies"},
	Projects:       {"projects", "personal projects"},
	Certifications: {"certifications", "certificates", "licenses"},
}

// boundaryTokens are section words whose appearance on a header-looking line
// ends the current section. Broader than headerAliases so sections we never
// extract (awards, references) still terminate the ones we do.
var boundaryTokens = []string{
	"experience", "education", "skills", "summary", "objective",
	"projects", "certifications", "awards", "publications", "references",
	"interests", "languages", "hobbies",
}

// scanState tracks progress through the line scan.
type scanState int

const (
	beforeSection scanState = iota
	inSection
	sectionDone
)

// Find returns the body of the named section: the lines between its header
// and the next recognizable section header (or end of document). The second
// return value is false when no header line matches, which callers treat as
// "use the full text".
func Find(text, name string) (string, bool) {
	aliases, ok := headerAliases[name]
	if !ok {
		return "", false
	}

	lines := strings.Split(text, "\n")
	state := beforeSection
	var body []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch state {
		case beforeSection:
			if isHeaderLine(trimmed, aliases) {
				state = inSection
			}
		case inSection:
			if isBoundaryLine(trimmed, aliases) {
				state = sectionDone
			} else {
				body = append(body, line)
			}
		case sectionDone:
		}
		if state == sectionDone {
			break
		}
	}

	if state == beforeSection {
		return "", false
	}
	return strings.TrimSpace(strings.Join(body, "\n")), true
}

// FindOrAll returns the named section body, or the full text when the
// section header is absent.
func FindOrAll(text, name string) string {
	if body, ok := Find(text, name); ok && body != "" {
		return body
	}
	return text
}

// isHeaderLine reports whether a line opens the section: short and carrying
// one of the section's alias tokens.
func isHeaderLine(line string, aliases []string) bool {
	if line == "" || len(line) >= maxHeaderLen {
		return false
	}
	lower := strings.ToLower(line)
	for _, alias := range aliases {
		if strings.Contains(lower, alias) {
			return true
		}
	}
	return false
}

// isBoundaryLine reports whether a line starts a different section. It must
// look like a header (trailing colon or shouted all-caps) and carry a known
// section token that is not one of the current section's own aliases.
func isBoundaryLine(line string, currentAliases []string) bool {
	if line == "" || len(line) >= maxHeaderLen {
		return false
	}
	if !strings.HasSuffix(line, ":") && !isAllUpper(line) {
		return false
	}
	lower := strings.ToLower(line)
	for _, alias := range currentAliases {
		if strings.Contains(lower, alias) {
			return false
		}
	}
	for _, token := range boundaryTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

func isAllUpper(line string) bool {
	if len(line) <= 3 {
		return false
	}
	hasLetter := false
	for _, r := range line {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}
