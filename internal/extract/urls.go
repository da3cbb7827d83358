package extract

import (
	"regexp"
	"strings"
)

// urlPatterns match full URLs plus the schemeless forms people put on
// resumes for known platforms and portfolio sites.
var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`https?://(?:www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b[-a-zA-Z0-9()@:%_+.~#?&/=]*`),
	regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[\w\-]+/?`),
	regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[\w\-]+/?`),
	regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?twitter\.com/[\w\-]+/?`),
	regexp.MustCompile(`(?i)www\.[\w\-]+\.[a-z]{2,}(?:/[\w\-]*)*`),
}

// platformDomains get an https:// prefix when the resume omits the scheme.
var platformDomains = []string{"linkedin.com", "github.com", "twitter.com"}

// URLs returns all URLs found in text, deduplicated. Recognized-platform
// URLs are normalized to carry an https:// scheme; trailing slashes are
// stripped so the same profile never appears twice.
func URLs(text string) []string {
	var candidates []string
	for _, pattern := range urlPatterns {
		candidates = append(candidates, pattern.FindAllString(text, -1)...)
	}

	seen := make(map[string]bool)
	var urls []string
	for _, candidate := range candidates {
		url := strings.TrimRight(strings.TrimSpace(candidate), "/")
		if url == "" {
			continue
		}
		if !strings.HasPrefix(url, "http") && isPlatformURL(url) {
			url = "https://" + url
		}
		if seen[url] {
			continue
		}
		seen[url] = true
		urls = append(urls, url)
	}
	return urls
}

func isPlatformURL(url string) bool {
	lower := strings.ToLower(url)
	for _, domain := range platformDomains {
		if strings.Contains(lower, domain) {
			return true
		}
	}
	return false
}
