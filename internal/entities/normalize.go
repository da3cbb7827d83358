// Package entities merges pattern-extractor output with external NER labels
// into a single normalized contact record.
package entities

import (
	"strings"

	"github.com/jfelix/resume-matcher/internal/types"
)

// countryNames are country-level location labels that lose to city-level
// candidates when both appear in a resume.
var countryNames = map[string]bool{
	"usa":            true,
	"united states":  true,
	"us":             true,
	"india":          true,
	"uk":             true,
	"united kingdom": true,
	"canada":         true,
	"germany":        true,
	"france":         true,
	"australia":      true,
}

// Normalize resolves an entity collection into a contact profile.
// Resolution is first-match-wins over the extractor's deterministic ordering;
// empty entity sets yield empty fields, never an error.
func Normalize(entities *types.ExtractedEntities) types.ContactProfile {
	var profile types.ContactProfile
	if entities == nil {
		return profile
	}

	if len(entities.Persons) > 0 {
		profile.FullName = entities.Persons[0]
	}
	if len(entities.Emails) > 0 {
		profile.Email = entities.Emails[0]
	}
	if len(entities.Phones) > 0 {
		profile.Phone = entities.Phones[0]
	}
	profile.Location = pickLocation(entities.Locations)
	profile.LinkedInURL = pickURL(entities.URLs, "linkedin.com")
	profile.GitHubURL = pickURL(entities.URLs, "github.com")

	return profile
}

// pickLocation prefers the first city-level location; country names are only
// used when nothing better exists.
func pickLocation(locations []string) string {
	for _, location := range locations {
		if !countryNames[strings.ToLower(strings.TrimSpace(location))] {
			return location
		}
	}
	if len(locations) > 0 {
		return locations[0]
	}
	return ""
}

// pickURL returns the first URL containing the platform's domain token.
func pickURL(urls []string, domain string) string {
	for _, url := range urls {
		if strings.Contains(strings.ToLower(url), domain) {
			return url
		}
	}
	return ""
}
