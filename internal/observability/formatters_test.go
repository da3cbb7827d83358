package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jfelix/resume-matcher/internal/types"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintProfile(&types.StructuredProfile{
		Contact:              types.ContactProfile{FullName: "Jane Doe", Email: "jane@acme.io"},
		Skills:               types.SkillSet{Technical: []string{"Go", "PostgreSQL", "Kubernetes", "Docker", "Redis", "Terraform"}},
		WorkHistory:          []types.WorkExperience{{Company: "Acme Corp", Title: "Senior Engineer"}},
		TotalExperienceYears: 6.5,
		CareerLevel:          types.CareerLevelSenior,
		Completeness:         70,
	})

	out := buf.String()
	assert.Contains(t, out, "STRUCTURED PROFILE")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "6.5 years")
	assert.Contains(t, out, "... and 1 more")
	assert.Contains(t, out, "Completeness: 70%")
}

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintMatchResult(&types.MatchResult{
		JobTitle:       "Software Engineer",
		OverallScore:   86,
		Confidence:     0.82,
		Recommendation: types.RecommendationStrong,
		CategoryScores: map[string]types.CategoryScore{
			types.CategorySkills:   {Score: 66, Weight: 35},
			types.CategoryLocation: {Score: 100, Weight: 10},
		},
		CriticalGaps: []types.Gap{{Missing: "Docker", Impact: types.ImpactMedium}},
	})

	out := buf.String()
	assert.Contains(t, out, "MATCH RESULT")
	assert.Contains(t, out, "86 / 100")
	assert.Contains(t, out, "Strong Match")
	assert.Contains(t, out, "Docker (medium)")
}

func TestPrint_NilInputsAreSilent(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintProfile(nil)
	printer.PrintMatchResult(nil)
	assert.Empty(t, buf.String())
}
