package types

// SalaryRange is the advertised compensation band for a job posting.
type SalaryRange struct {
	Min      int    `json:"min,omitempty"`
	Max      int    `json:"max,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// JobRequirement is the caller-supplied description of a job posting.
// It is read-only input to the match scoring engine. Title is the only
// mandatory field; scoring tolerates everything else being absent.
type JobRequirement struct {
	Title           string       `json:"title" validate:"required"`
	Company         string       `json:"company,omitempty"`
	RequiredSkills  []string     `json:"required_skills,omitempty"`
	PreferredSkills []string     `json:"preferred_skills,omitempty"`
	MinYears        float64      `json:"min_years,omitempty" validate:"gte=0"`
	PreferredYears  float64      `json:"preferred_years,omitempty" validate:"gte=0"`
	Level           string       `json:"level,omitempty"`
	Industry        string       `json:"industry,omitempty"`
	Location        string       `json:"location,omitempty"`
	RequiresDegree  bool         `json:"requires_degree,omitempty"`
	SalaryRange     *SalaryRange `json:"salary_range,omitempty"`
}
