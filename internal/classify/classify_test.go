package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jfelix/resume-matcher/internal/types"
)

func TestLevel_ExecutiveKeywordsWin(t *testing.T) {
	c := NewKeywordLevelClassifier(DefaultLevelKeywords())

	assert.Equal(t, types.CareerLevelExecutive, c.Classify("VP of Engineering", YearsUnknown))
	assert.Equal(t, types.CareerLevelExecutive, c.Classify("VP of Engineering", 3))
	assert.Equal(t, types.CareerLevelExecutive, c.Classify("Chief Technology Officer", YearsUnknown))
}

func TestLevel_YearsThresholds(t *testing.T) {
	c := NewKeywordLevelClassifier(DefaultLevelKeywords())
	text := "Worked on billing systems"

	tests := []struct {
		years float64
		want  types.CareerLevel
	}{
		{0, types.CareerLevelEntry},
		{1.5, types.CareerLevelEntry},
		{2, types.CareerLevelMid},
		{4.9, types.CareerLevelMid},
		{5, types.CareerLevelSenior},
		{9, types.CareerLevelSenior},
		{10, types.CareerLevelExecutive},
		{25, types.CareerLevelExecutive},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Classify(text, tt.years), "years=%v", tt.years)
	}
}

func TestLevel_YearsOutrankKeywords(t *testing.T) {
	c := NewKeywordLevelClassifier(DefaultLevelKeywords())

	// "Senior" in the title loses to one year of actual experience.
	assert.Equal(t, types.CareerLevelEntry, c.Classify("Senior Software Engineer", 1))
}

func TestLevel_KeywordFallbackOrder(t *testing.T) {
	c := NewKeywordLevelClassifier(DefaultLevelKeywords())

	assert.Equal(t, types.CareerLevelSenior, c.Classify("Senior Software Engineer", YearsUnknown))
	assert.Equal(t, types.CareerLevelMid, c.Classify("Software Engineer", YearsUnknown))
	assert.Equal(t, types.CareerLevelEntry, c.Classify("Junior Developer", YearsUnknown))
	assert.Equal(t, types.CareerLevelMid, c.Classify("wrote code", YearsUnknown))
}

func TestIndustryClassifier_SingleMatchNormalizesToOne(t *testing.T) {
	scores := NewIndustryClassifier().Classify(
		"Python developer building cloud software on AWS with Docker")

	label, score := scores.Best()
	assert.Equal(t, "Technology & Software", label)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestIndustryClassifier_ScoresSumToOne(t *testing.T) {
	scores := NewIndustryClassifier().Classify("financial analyst teaching python")

	assert.GreaterOrEqual(t, len(scores), 2)
	var total float64
	for _, score := range scores {
		total += score
	}
	assert.InDelta(t, 1.0, total, 1e-9)

	label, _ := scores.Best()
	assert.Equal(t, "Finance & Banking", label)
}

func TestIndustryClassifier_NoMatchIsEmpty(t *testing.T) {
	assert.Empty(t, NewIndustryClassifier().Classify("zzz qqq"))
}

func TestRoleClassifier_DevOps(t *testing.T) {
	scores := NewRoleClassifier().Classify(
		"devops engineer managing kubernetes and docker deployment")

	label, score := scores.Best()
	assert.Equal(t, "DevOps Engineer", label)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestScoresBest_DeterministicTieBreak(t *testing.T) {
	scores := Scores{"B Label": 0.5, "A Label": 0.5}

	label, _ := scores.Best()
	assert.Equal(t, "A Label", label)
}
