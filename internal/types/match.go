package types

// Category names used as keys in MatchResult.CategoryScores.
const (
	CategorySkills     = "skills"
	CategoryExperience = "experience"
	CategoryEducation  = "education"
	CategoryRole       = "role_alignment"
	CategoryLocation   = "location"
)

// CategoryScore is a 0-100 score for one dimension of job fit, with its
// weight in the overall blend. Weights across a match always sum to 100.
type CategoryScore struct {
	Score   int            `json:"score"`
	Weight  int            `json:"weight"`
	Details map[string]any `json:"details,omitempty"`
}

// GapImpact grades how much a gap hurts the candidate's fit.
type GapImpact string

// Gap impact levels.
const (
	ImpactHigh   GapImpact = "high"
	ImpactMedium GapImpact = "medium"
	ImpactLow    GapImpact = "low"
)

// Gap is a missing qualification with an impact grade and a remediation
// suggestion generated from a fixed template.
type Gap struct {
	Category   string    `json:"category"`
	Missing    string    `json:"missing"`
	Impact     GapImpact `json:"impact"`
	Suggestion string    `json:"suggestion"`
}

// Recommendation is the coarse hiring verdict derived from the overall score.
type Recommendation string

// Recommendation bands. Thresholds: >=85, >=75, >=60, below.
const (
	RecommendationStrong   Recommendation = "Strong Match"
	RecommendationGood     Recommendation = "Good Match"
	RecommendationModerate Recommendation = "Moderate Match"
	RecommendationWeak     Recommendation = "Weak Match"
)

// MatchResult is the outcome of scoring one profile against one job.
// It is computed once per (profile, job) pair and never mutated.
type MatchResult struct {
	ID               string                   `json:"id,omitempty"`
	ProfileID        string                   `json:"profile_id,omitempty"`
	JobTitle         string                   `json:"job_title"`
	OverallScore     int                      `json:"overall_score"`
	Confidence       float64                  `json:"confidence"`
	Recommendation   Recommendation           `json:"recommendation"`
	CategoryScores   map[string]CategoryScore `json:"category_scores"`
	Strengths        []string                 `json:"strengths,omitempty"`
	CriticalGaps     []Gap                    `json:"critical_gaps,omitempty"`
	ImprovementAreas []Gap                    `json:"improvement_areas,omitempty"`
	Summary          string                   `json:"summary"`
	KeyFactors       []string                 `json:"key_factors,omitempty"`
	NextSteps        []string                 `json:"next_steps,omitempty"`
}
