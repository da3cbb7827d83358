package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfelix/resume-matcher/internal/match"
	"github.com/jfelix/resume-matcher/internal/types"
)

const sampleResume = `Jane Doe
jane.doe@example.com | (555) 123-4567

SUMMARY
Senior software engineer with eight years of experience building backend
services and data pipelines for high-traffic products.

WORK EXPERIENCE
Senior Software Engineer
Acme Corp
2019 - Present
- Led a team of 5 engineers migrating services to Go, cutting latency 30%

EDUCATION
B.S. in Computer Science, Stanford University, 2014

SKILLS
Go, Python, PostgreSQL, Docker, Kubernetes, AWS
`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(context.Background(), Config{
		Addr:    ":0",
		Scoring: match.DefaultConfig(),
	})
	require.NoError(t, err)
	return s
}

func doJSON(s *Server, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(s, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestCreateProfile(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(s, http.MethodPost, "/profiles", ProfileRequest{ResumeText: sampleResume})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Profile)
	assert.False(t, resp.ExternalSignals)
	assert.Equal(t, "jane.doe@example.com", resp.Profile.Contact.Email)
	assert.Contains(t, resp.Profile.Skills.Technical, "Go")
	assert.NotEmpty(t, resp.Profile.ID)
}

func TestCreateProfile_CallerEntities(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(s, http.MethodPost, "/profiles", ProfileRequest{
		ResumeText: sampleResume,
		Entities:   &types.ExtractedEntities{Persons: []string{"Jane A. Doe"}},
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.ExternalSignals)
}

func TestCreateProfile_SparseInput(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(s, http.MethodPost, "/profiles", ProfileRequest{ResumeText: "too short"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateProfile_BadBody(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/profiles", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type failingSignals struct{}

func (failingSignals) Entities(context.Context, string) (*types.ExtractedEntities, error) {
	return nil, errors.New("quota exceeded")
}

func (failingSignals) Embedding(context.Context, string) ([]float32, error) {
	return nil, errors.New("quota exceeded")
}

func (failingSignals) Close() error { return nil }

func TestCreateProfile_SignalFailureDegrades(t *testing.T) {
	s := newTestServer(t)
	s.signals = failingSignals{}

	rec := doJSON(s, http.MethodPost, "/profiles", ProfileRequest{ResumeText: sampleResume})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.ExternalSignals)
	assert.Equal(t, "jane.doe@example.com", resp.Profile.Contact.Email)
}

func matchRequestBody(job string) map[string]any {
	return map[string]any{
		"profile": &types.StructuredProfile{
			Skills:               types.SkillSet{Technical: []string{"Go", "PostgreSQL"}},
			WorkHistory:          []types.WorkExperience{{Title: "Software Engineer", Company: "Acme Corp"}},
			TotalExperienceYears: 6,
			CareerLevel:          types.CareerLevelSenior,
		},
		"job": json.RawMessage(job),
	}
}

func TestCreateMatch_InlineProfile(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(s, http.MethodPost, "/matches", matchRequestBody(`{
		"title": "Software Engineer",
		"required_skills": ["Go", "PostgreSQL"],
		"min_years": 5
	}`))

	require.Equal(t, http.StatusCreated, rec.Code)

	var result types.MatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "Software Engineer", result.JobTitle)
	assert.GreaterOrEqual(t, result.OverallScore, 0)
	assert.LessOrEqual(t, result.OverallScore, 100)
	assert.NotEmpty(t, result.Recommendation)
	assert.Len(t, result.CategoryScores, 5)
}

func TestCreateMatch_JobFailsSchema(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(s, http.MethodPost, "/matches", matchRequestBody(`{"company": "Acme Corp"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "title")
}

func TestCreateMatch_RejectsUnknownJobFields(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(s, http.MethodPost, "/matches", matchRequestBody(`{
		"title": "Software Engineer",
		"seniority": "senior"
	}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateMatch_RequiresExactlyOneProfileSource(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(s, http.MethodPost, "/matches", map[string]any{
		"job": json.RawMessage(`{"title": "Engineer"}`),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := matchRequestBody(`{"title": "Engineer"}`)
	body["profile_id"] = "0b06e1f1-9de3-4bc7-a8c6-0f8a74ab0a01"
	rec = doJSON(s, http.MethodPost, "/matches", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStoredLookups_WithoutDatabase(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(s, http.MethodGet, "/profiles/0b06e1f1-9de3-4bc7-a8c6-0f8a74ab0a01", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = doJSON(s, http.MethodGet, "/matches/0b06e1f1-9de3-4bc7-a8c6-0f8a74ab0a01", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&match.ErrInvalidJob{Reason: "Title"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}
