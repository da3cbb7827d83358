// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RawDocument is the output of the external document-to-text extractor.
// The core never parses files itself; a failed extraction arrives here as an
// empty Text with whatever metadata survived.
type RawDocument struct {
	Text     string            `json:"text"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// ExtractedEntities holds entity values gathered from pattern extraction and
// the external NER service. Every slice carries set semantics: producers must
// deduplicate before populating, and consumers may rely on the absence of
// duplicates.
type ExtractedEntities struct {
	Persons       []string `json:"persons"`
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
	Dates         []string `json:"dates"`
	Emails        []string `json:"emails"`
	Phones        []string `json:"phones"`
	URLs          []string `json:"urls"`
}

// IsEmpty reports whether no entity of any kind was extracted.
func (e *ExtractedEntities) IsEmpty() bool {
	return len(e.Persons) == 0 && len(e.Organizations) == 0 &&
		len(e.Locations) == 0 && len(e.Dates) == 0 &&
		len(e.Emails) == 0 && len(e.Phones) == 0 && len(e.URLs) == 0
}

// Merge returns the set union of two entity collections, preserving the
// receiver's element order for values present in both.
func (e *ExtractedEntities) Merge(other *ExtractedEntities) *ExtractedEntities {
	if other == nil {
		return e
	}
	return &ExtractedEntities{
		Persons:       unionStrings(e.Persons, other.Persons),
		Organizations: unionStrings(e.Organizations, other.Organizations),
		Locations:     unionStrings(e.Locations, other.Locations),
		Dates:         unionStrings(e.Dates, other.Dates),
		Emails:        unionStrings(e.Emails, other.Emails),
		Phones:        unionStrings(e.Phones, other.Phones),
		URLs:          unionStrings(e.URLs, other.URLs),
	}
}

func unionStrings(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, lst := range [][]string{a, b} {
		for _, v := range lst {
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// ContactProfile is the normalized contact record for one person.
// Each field holds at most one value; resolution rules live in the entities
// package. Empty string means the field could not be resolved.
type ContactProfile struct {
	FullName    string `json:"full_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Location    string `json:"location,omitempty"`
	LinkedInURL string `json:"linkedin_url,omitempty"`
	GitHubURL   string `json:"github_url,omitempty"`
}

// SkillSet buckets canonical skill names. Technical is the flat view holding
// every canonical technical skill; the sub-buckets (Programming, Frameworks,
// Databases, Cloud, Tools) may overlap with each other but each holds a given
// skill at most once. Soft skills are detected independently from text.
type SkillSet struct {
	Technical   []string `json:"technical"`
	Soft        []string `json:"soft"`
	Programming []string `json:"programming"`
	Frameworks  []string `json:"frameworks"`
	Databases   []string `json:"databases"`
	Cloud       []string `json:"cloud"`
	Tools       []string `json:"tools"`
}

// All returns the union of technical and soft skills.
func (s *SkillSet) All() []string {
	return unionStrings(s.Technical, s.Soft)
}

// WorkExperience represents one entry in a candidate's work history.
// An empty EndDate means the role is current.
type WorkExperience struct {
	Company      string   `json:"company"`
	Title        string   `json:"title"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// Current reports whether the role has no recorded end date.
func (w *WorkExperience) Current() bool {
	return w.EndDate == ""
}

// Education represents one education entry extracted from a resume.
type Education struct {
	Degree         string   `json:"degree,omitempty"`
	Field          string   `json:"field,omitempty"`
	Institution    string   `json:"institution,omitempty"`
	GraduationYear string   `json:"graduation_year,omitempty"`
	GPA            string   `json:"gpa,omitempty"`
	Honors         []string `json:"honors,omitempty"`
}

// CareerLevel is the inferred seniority of a candidate.
type CareerLevel string

// Career levels in ascending order of seniority.
const (
	CareerLevelEntry     CareerLevel = "entry"
	CareerLevelMid       CareerLevel = "mid"
	CareerLevelSenior    CareerLevel = "senior"
	CareerLevelExecutive CareerLevel = "executive"
)

// StructuredProfile is the normalized, machine-readable representation of a
// resume. It is created once per document by the profile façade and never
// mutated afterwards; refreshing means re-running the pipeline.
type StructuredProfile struct {
	ID                   string           `json:"id,omitempty"`
	Contact              ContactProfile   `json:"contact"`
	Summary              string           `json:"summary,omitempty"`
	Skills               SkillSet         `json:"skills"`
	WorkHistory          []WorkExperience `json:"work_history"`
	Education            []Education      `json:"education"`
	TotalExperienceYears float64          `json:"total_experience_years"`
	CareerLevel          CareerLevel      `json:"career_level"`
	Industry             string           `json:"industry,omitempty"`
	Role                 string           `json:"role,omitempty"`
	Completeness         float64          `json:"completeness"`
	Suggestions          []string         `json:"suggestions,omitempty"`
}
