// Package skills maps raw skill tokens to canonical names and buckets them
// into categories using a closed, static vocabulary.
package skills

// Category names for technical sub-buckets.
const (
	CategoryProgramming = "programming"
	CategoryFrameworks  = "frameworks"
	CategoryDatabases   = "databases"
	CategoryCloud       = "cloud"
	CategoryTools       = "tools"
)

// Vocabulary is the immutable configuration for a Taxonomy: alias table,
// category keyword lists, and the soft-skill dictionary. Injected at
// construction so tenants can ship their own vocabularies and tests stay
// deterministic.
type Vocabulary struct {
	// Aliases maps lowercased variants to the canonical skill name.
	Aliases map[string]string `json:"aliases"`
	// Categories maps a category name to canonical keywords belonging to it.
	Categories map[string][]string `json:"categories"`
	// SoftSkills are matched against resume text, not the skill list.
	SoftSkills []string `json:"soft_skills"`
}

// DefaultVocabulary returns the built-in vocabulary.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Aliases: map[string]string{
			// Programming languages
			"js":         "JavaScript",
			"javascript": "JavaScript",
			"ts":         "TypeScript",
			"typescript": "TypeScript",
			"py":         "Python",
			"python":     "Python",
			"cpp":        "C++",
			"c#":         "C Sharp",
			"golang":     "Go",
			"go lang":    "Go",
			"java":       "Java",
			"rust":       "Rust",
			"ruby":       "Ruby",
			"kotlin":     "Kotlin",
			"swift":      "Swift",
			"node":       "Node.js",
			"nodejs":     "Node.js",
			"node.js":    "Node.js",
			"react":      "React",
			"react.js":   "React",
			"reactjs":    "React",
			"vue":        "Vue",
			"vue.js":     "Vue",
			"vuejs":      "Vue",
			"angular":    "Angular",
			"next.js":    "Next.js",
			"django":     "Django",
			"flask":      "Flask",
			"fastapi":    "FastAPI",
			"spring":     "Spring",
			"express":    "Express",

			// Cloud and DevOps
			"k8s":        "Kubernetes",
			"kubernetes": "Kubernetes",
			"docker":     "Docker",
			"aws":        "AWS",
			"amazon web services": "AWS",
			"gcp":                 "Google Cloud",
			"google cloud":        "Google Cloud",
			"google cloud platform": "Google Cloud",
			"azure":           "Azure",
			"microsoft azure": "Azure",
			"terraform":       "Terraform",
			"ansible":         "Ansible",
			"jenkins":         "Jenkins",
			"git":             "Git",
			"linux":           "Linux",
			"ci/cd":           "CI/CD",

			// AI/ML
			"ml":  "Machine Learning",
			"ai":  "Artificial Intelligence",
			"dl":  "Deep Learning",
			"cv":  "Computer Vision",
			"nlp": "Natural Language Processing",

			// Databases
			"postgres":      "PostgreSQL",
			"postgresql":    "PostgreSQL",
			"mongo":         "MongoDB",
			"mongodb":       "MongoDB",
			"mysql":         "MySQL",
			"redis":         "Redis",
			"elasticsearch": "Elasticsearch",
			"sql":           "SQL",
			"nosql":         "NoSQL",
			"oracle":        "Oracle",
			"sql server":    "SQL Server",

			// Methodologies
			"agile": "Agile",
			"scrum": "Scrum",
		},
		Categories: map[string][]string{
			CategoryProgramming: {
				"Python", "Java", "JavaScript", "TypeScript", "C++", "C Sharp",
				"Ruby", "PHP", "Swift", "Kotlin", "Go", "Rust", "Scala", "SQL",
			},
			CategoryFrameworks: {
				"Django", "Flask", "FastAPI", "React", "Angular", "Vue",
				"Spring", "Express", "Next.js", "Node.js",
			},
			CategoryDatabases: {
				"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch",
				"Oracle", "SQL Server", "NoSQL",
			},
			CategoryCloud: {
				"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes",
			},
			CategoryTools: {
				"Git", "Jenkins", "CI/CD", "Terraform", "Ansible", "Linux",
				"Docker", "Kubernetes", "Agile", "Scrum",
			},
		},
		SoftSkills: []string{
			"leadership", "communication", "teamwork", "problem solving",
			"critical thinking", "collaboration", "time management",
			"adaptability", "creativity", "innovation", "interpersonal",
			"presentation", "negotiation", "conflict resolution",
			"emotional intelligence", "decision making", "strategic thinking",
			"attention to detail", "organization", "multitasking",
		},
	}
}
