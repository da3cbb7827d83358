package education

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfelix/resume-matcher/internal/types"
)

const sampleEducation = `EDUCATION
B.S. in Computer Science, Stanford University, 2014
GPA: 3.8/4.0
AWS Certified Solutions Architect

M.S. in Machine Learning, MIT 2016`

func TestExtract_DegreesAndInstitutions(t *testing.T) {
	entries := Extract(sampleEducation, []string{"Stanford University", "MIT"})
	require.Len(t, entries, 2)

	assert.Equal(t, "B.S.", entries[0].Degree)
	assert.Equal(t, "Computer Science", entries[0].Field)
	assert.Equal(t, "Stanford University", entries[0].Institution)
	assert.Equal(t, "2014", entries[0].GraduationYear)
	assert.Equal(t, "3.8/4.0", entries[0].GPA)
	assert.Equal(t, []string{"AWS Certified Solutions Architect"}, entries[0].Honors)

	assert.Equal(t, "M.S.", entries[1].Degree)
	assert.Equal(t, "Machine Learning", entries[1].Field)
	assert.Empty(t, entries[1].Institution)
}

func TestExtract_InstitutionKeywordFilter(t *testing.T) {
	text := "EDUCATION\nStudied informally"

	entries := Extract(text, []string{"Acme Corp", "City College of New York"})
	require.Len(t, entries, 1)
	assert.Equal(t, "City College of New York", entries[0].Institution)
	assert.Empty(t, entries[0].Degree)
}

func TestExtract_NoSignalNoEntries(t *testing.T) {
	assert.Empty(t, Extract("EDUCATION\nself taught", []string{"Acme Corp"}))
	assert.Empty(t, Extract("no education mentioned anywhere", nil))
}

func TestExtract_GPAWithoutScale(t *testing.T) {
	text := "EDUCATION\nBachelor of Engineering\nCGPA 9.2"

	entries := Extract(text, nil)
	require.Len(t, entries, 1)
	assert.Equal(t, "9.2", entries[0].GPA)
}

func TestHasDegree(t *testing.T) {
	assert.False(t, HasDegree(nil))
	assert.False(t, HasDegree([]types.Education{{Institution: "State University"}}))
	assert.True(t, HasDegree([]types.Education{{Degree: "B.S."}}))
}

func TestHasAdvancedDegree(t *testing.T) {
	assert.False(t, HasAdvancedDegree([]types.Education{{Degree: "B.S."}}))
	assert.True(t, HasAdvancedDegree([]types.Education{{Degree: "M.S."}}))
	assert.True(t, HasAdvancedDegree([]types.Education{{Degree: "MBA"}}))
	assert.True(t, HasAdvancedDegree([]types.Education{{Degree: "Ph.D."}}))
}
