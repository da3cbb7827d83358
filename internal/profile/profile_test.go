package profile

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfelix/resume-matcher/internal/types"
)

const sampleResume = `Jane Doe
jane.doe@acme.io
+1-415-555-0133
https://linkedin.com/in/janedoe

SUMMARY
Seasoned backend engineer with a decade of experience building distributed systems.

WORK EXPERIENCE
Senior Software Engineer at Acme
Jan 2018 - Present
Led migration of the payments platform, cut costs by 30%

EDUCATION
B.S. in Computer Science, Stanford University, 2012

SKILLS
Go, PostgreSQL, Kubernetes, Docker, Microservices`

func fixedClock() time.Time {
	return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
}

func sampleEntities() *types.ExtractedEntities {
	return &types.ExtractedEntities{
		Persons:       []string{"Jane Doe"},
		Organizations: []string{"Acme Corp", "Stanford University"},
		Locations:     []string{"San Francisco"},
	}
}

func TestStructureDocument_FullResume(t *testing.T) {
	builder := NewBuilder(WithClock(fixedClock))

	result, err := builder.StructureDocument(context.Background(), sampleResume, sampleEntities())
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "Jane Doe", result.Contact.FullName)
	assert.Equal(t, "jane.doe@acme.io", result.Contact.Email)
	assert.Equal(t, "+1-415-555-0133", result.Contact.Phone)
	assert.Equal(t, "San Francisco", result.Contact.Location)
	assert.Equal(t, "https://linkedin.com/in/janedoe", result.Contact.LinkedInURL)

	assert.Contains(t, result.Summary, "Seasoned backend engineer")

	for _, skill := range []string{"Go", "PostgreSQL", "Kubernetes", "Docker", "Microservices"} {
		assert.Contains(t, result.Skills.Technical, skill)
	}

	require.Len(t, result.WorkHistory, 2)
	assert.Equal(t, "Acme Corp", result.WorkHistory[0].Company)
	assert.Equal(t, "Senior Software Engineer at Acme", result.WorkHistory[0].Title)
	assert.Equal(t, "Jan 2018", result.WorkHistory[0].StartDate)

	require.Len(t, result.Education, 1)
	assert.Equal(t, "B.S.", result.Education[0].Degree)
	assert.Equal(t, "Stanford University", result.Education[0].Institution)

	assert.Equal(t, 7.0, result.TotalExperienceYears)
	assert.Equal(t, types.CareerLevelSenior, result.CareerLevel)
	assert.Equal(t, "Technology & Software", result.Industry)
}

func TestStructureDocument_Completeness(t *testing.T) {
	builder := NewBuilder(WithClock(fixedClock))

	result, err := builder.StructureDocument(context.Background(), sampleResume, sampleEntities())
	require.NoError(t, err)

	// name 10 + email 10 + phone 10 + work 20 + education 10 + skills 10
	assert.Equal(t, 70.0, result.Completeness)
	assert.NotContains(t, result.Suggestions, "Add email address for better visibility")
	assert.NotContains(t, result.Suggestions, "Include educational background")
}

func TestStructureDocument_EmptyEntitiesStillValid(t *testing.T) {
	text := "An experienced engineer who has built many systems over the years, " +
		"focused on reliability and simple designs across several product teams."
	builder := NewBuilder(WithClock(fixedClock))

	result, err := builder.StructureDocument(context.Background(), text, &types.ExtractedEntities{})
	require.NoError(t, err)

	assert.Equal(t, types.ContactProfile{}, result.Contact)
	assert.Empty(t, result.WorkHistory)
	assert.Equal(t, 0.0, result.TotalExperienceYears)
	assert.Equal(t, types.CareerLevelMid, result.CareerLevel)
	assert.Contains(t, result.Suggestions, "Add email address for better visibility")
}

func TestStructureDocument_NilEntities(t *testing.T) {
	builder := NewBuilder(WithClock(fixedClock))

	result, err := builder.StructureDocument(context.Background(), sampleResume, nil)
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@acme.io", result.Contact.Email)
	assert.Empty(t, result.WorkHistory)
}

func TestStructureDocument_RejectsSparseInput(t *testing.T) {
	builder := NewBuilder()

	_, err := builder.StructureDocument(context.Background(), "too short", nil)
	var sparse *ErrInputTooSparse
	require.ErrorAs(t, err, &sparse)
	assert.Equal(t, len("too short"), sparse.Length)

	_, err = builder.StructureDocument(context.Background(), strings.Repeat(" ", 200), nil)
	assert.ErrorAs(t, err, &sparse)
}

func TestStructureDocument_CanceledContext(t *testing.T) {
	builder := NewBuilder()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := builder.StructureDocument(ctx, sampleResume, sampleEntities())
	assert.ErrorIs(t, err, context.Canceled)
}
