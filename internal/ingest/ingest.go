// Package ingest turns external documents, plain-text resumes and HTML job
// postings, into the raw text the pipeline consumes. A failed ingestion
// yields empty text, never a panic into the core.
package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jfelix/resume-matcher/internal/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "Mozilla/5.0 (compatible; ResumeMatcher/1.0)"
)

// Error describes a failed document ingestion.
type Error struct {
	Source  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ingest error for %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("ingest error for %s: %s", e.Source, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Client fetches and cleans remote job postings.
type Client struct {
	http      *http.Client
	userAgent string
}

// NewClient builds an ingestion client. A zero timeout uses the default.
func NewClient(timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}
}

// JobPosting fetches a job posting URL and returns its main text content.
func (c *Client) JobPosting(ctx context.Context, postingURL string) (string, error) {
	parsed, err := url.Parse(postingURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &Error{Source: postingURL, Message: "invalid URL", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, postingURL, nil)
	if err != nil {
		return "", &Error{Source: postingURL, Message: "failed to build request", Cause: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &Error{Source: postingURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &Error{Source: postingURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Source: postingURL, Message: "failed to read response body", Cause: err}
	}

	text, err := ExtractText(string(body), jobPostingSelectors()...)
	if err != nil {
		return "", &Error{Source: postingURL, Message: "failed to extract text", Cause: err}
	}
	return text, nil
}

// Document reads a plain-text resume file into a raw document. Metadata
// records the source path.
func Document(path string) (types.RawDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.RawDocument{}, &Error{Source: path, Message: "failed to read file", Cause: err}
	}
	return types.RawDocument{
		Text:     string(data),
		Metadata: map[string]string{"source": path},
	}, nil
}

// ExtractText parses HTML, strips navigation and script noise, and returns
// the text of the first matching content selector, falling back to the whole
// body.
func ExtractText(html string, contentSelectors ...string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .sidebar, .cookie-banner, .popup").Remove()

	var content *goquery.Selection
	for _, selector := range contentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	return collapseWhitespace(content.Text()), nil
}

func jobPostingSelectors() []string {
	return []string{
		".job-description",
		".job-content",
		"#job-description",
		"#job-content",
		".description",
		"main",
		"article",
	}
}

// collapseWhitespace trims lines and folds runs of blank lines into one.
func collapseWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var out []string
	blank := true
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, strings.Join(strings.Fields(line), " "))
		blank = false
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
