package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane@acme.io

SUMMARY
Seasoned backend engineer with a focus on distributed systems.

WORK EXPERIENCE
Acme Corp - Senior Engineer
Jan 2019 - Present
Led the payments platform team.

EDUCATION
B.S. Computer Science, State University, 2014

SKILLS
Go, PostgreSQL, Kubernetes`

func TestFind_ExtractsBodyBetweenHeaders(t *testing.T) {
	body, ok := Find(sampleResume, Experience)
	require.True(t, ok)
	assert.Contains(t, body, "Acme Corp")
	assert.Contains(t, body, "Jan 2019")
	assert.NotContains(t, body, "B.S. Computer Science")
	assert.NotContains(t, body, "Seasoned backend")
}

func TestFind_LastSectionRunsToEOF(t *testing.T) {
	body, ok := Find(sampleResume, Skills)
	require.True(t, ok)
	assert.Equal(t, "Go, PostgreSQL, Kubernetes", body)
}

func TestFind_SummaryAliases(t *testing.T) {
	text := "Profile:\nBuilds reliable services.\n\nEXPERIENCE\nAcme"

	body, ok := Find(text, Summary)
	require.True(t, ok)
	assert.Equal(t, "Builds reliable services.", body)
}

func TestFind_MissingHeaderReturnsFalse(t *testing.T) {
	_, ok := Find("just a paragraph of plain prose with no headers", Education)
	assert.False(t, ok)
}

func TestFind_UnknownSectionName(t *testing.T) {
	_, ok := Find(sampleResume, "salary history")
	assert.False(t, ok)
}

func TestFind_LongLinesAreNotHeaders(t *testing.T) {
	text := "I gained broad experience across many industries and roles over the years working abroad.\nActual content"

	_, ok := Find(text, Experience)
	assert.False(t, ok)
}

func TestFindOrAll_FallsBackToFullText(t *testing.T) {
	text := "no headers at all, only prose"
	assert.Equal(t, text, FindOrAll(text, Skills))
}

func TestFind_LowercaseBodyLineDoesNotEndSection(t *testing.T) {
	text := "EXPERIENCE\ntaught skills workshops for new hires\nstill experience content"

	body, ok := Find(text, Experience)
	require.True(t, ok)
	assert.Contains(t, body, "skills workshops")
	assert.Contains(t, body, "still experience content")
}
