package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postingHTML = `<html>
<head><title>Job</title><style>body { color: red }</style></head>
<body>
<nav>Home | Jobs | About</nav>
<div class="job-description">
  <h1>Senior Go Engineer</h1>
  <p>Build  and operate    backend services.</p>

  <p>5+ years of experience required.</p>
</div>
<footer>Copyright</footer>
</body>
</html>`

func TestExtractText_UsesContentSelectorAndStripsNoise(t *testing.T) {
	text, err := ExtractText(postingHTML, ".job-description")
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Go Engineer")
	assert.Contains(t, text, "Build and operate backend services.")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Copyright")
	assert.NotContains(t, text, "color: red")
}

func TestExtractText_FallsBackToBody(t *testing.T) {
	text, err := ExtractText("<html><body><p>plain posting</p></body></html>", ".missing")
	require.NoError(t, err)
	assert.Equal(t, "plain posting", text)
}

func TestJobPosting_FetchesAndCleans(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(postingHTML))
	}))
	defer server.Close()

	text, err := NewClient(0).JobPosting(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Go Engineer")
}

func TestJobPosting_RejectsBadStatusAndURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(0)

	_, err := client.JobPosting(context.Background(), server.URL)
	var ingestErr *Error
	require.ErrorAs(t, err, &ingestErr)
	assert.Contains(t, ingestErr.Message, "404")

	_, err = client.JobPosting(context.Background(), "not-a-url")
	assert.ErrorAs(t, err, &ingestErr)
}

func TestDocument_ReadsFileWithMetadata(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("resume text"), 0o644))

	doc, err := Document(path)
	require.NoError(t, err)
	assert.Equal(t, "resume text", doc.Text)
	assert.Equal(t, path, doc.Metadata["source"])

	_, err = Document(filepath.Join(t.TempDir(), "missing.txt"))
	var ingestErr *Error
	assert.ErrorAs(t, err, &ingestErr)
}
