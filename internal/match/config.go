package match

// Weights are the per-category contributions to the overall score.
// They must sum to 100.
type Weights struct {
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
	Education  int `json:"education"`
	Role       int `json:"role_alignment"`
	Location   int `json:"location"`
}

// Sum returns the total of all weights.
func (w Weights) Sum() int {
	return w.Skills + w.Experience + w.Education + w.Role + w.Location
}

// Config controls the scoring engine. The role-alignment factors are
// placeholder constants standing in for signals nobody derives yet; treat
// them as tunables, not validated business logic.
type Config struct {
	Weights Weights `json:"weights"`

	// TitleContainedSimilarity is used when the job title appears inside a
	// held title, TitleDefaultSimilarity otherwise.
	TitleContainedSimilarity float64 `json:"title_contained_similarity"`
	TitleDefaultSimilarity   float64 `json:"title_default_similarity"`
	// ResponsibilityOverlap and CareerProgression are fixed stand-in factors
	// for the non-title portion of role alignment.
	ResponsibilityOverlap float64 `json:"responsibility_overlap"`
	CareerProgression     float64 `json:"career_progression"`
}

// DefaultConfig returns the standard weights (35/25/15/15/10) and
// role-alignment placeholders.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Skills:     35,
			Experience: 25,
			Education:  15,
			Role:       15,
			Location:   10,
		},
		TitleContainedSimilarity: 0.95,
		TitleDefaultSimilarity:   0.7,
		ResponsibilityOverlap:    0.85,
		CareerProgression:        0.9,
	}
}
