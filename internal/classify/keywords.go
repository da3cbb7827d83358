package classify

import "strings"

// Scores maps candidate labels to normalized confidence values. When
// non-empty, values sum to 1.
type Scores map[string]float64

// Best returns the highest-scoring label. Ties break lexicographically so
// results stay deterministic across map iteration orders.
func (s Scores) Best() (string, float64) {
	var bestLabel string
	var bestScore float64
	for label, score := range s {
		if score > bestScore || (score == bestScore && (bestLabel == "" || label < bestLabel)) {
			bestLabel, bestScore = label, score
		}
	}
	return bestLabel, bestScore
}

// KeywordClassifier scores text against labeled keyword lists. A label's raw
// score is the fraction of its keywords present in the text; raw scores are
// normalized over all matched labels.
type KeywordClassifier struct {
	labelKeywords map[string][]string
}

// NewKeywordClassifier builds a classifier over a label-to-keywords table.
func NewKeywordClassifier(labelKeywords map[string][]string) *KeywordClassifier {
	return &KeywordClassifier{labelKeywords: labelKeywords}
}

func (c *KeywordClassifier) Classify(text string) Scores {
	lower := strings.ToLower(text)

	results := make(Scores)
	var total float64
	for label, keywords := range c.labelKeywords {
		hits := 0
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		score := float64(hits) / float64(len(keywords))
		results[label] = score
		total += score
	}

	for label := range results {
		results[label] /= total
	}
	return results
}

// NewIndustryClassifier returns the keyword classifier over the built-in
// industry label table.
func NewIndustryClassifier() *KeywordClassifier {
	return NewKeywordClassifier(map[string][]string{
		"Technology & Software":   {"software", "programming", "developer", "tech", "coding", "python", "java", "javascript", "api", "cloud", "aws", "docker"},
		"Finance & Banking":       {"finance", "banking", "investment", "accounting", "financial", "trader", "analyst", "portfolio"},
		"Healthcare & Medical":    {"healthcare", "medical", "hospital", "doctor", "nurse", "patient", "clinical", "physician"},
		"Retail & E-commerce":     {"retail", "ecommerce", "sales", "customer", "store", "merchandise", "shopping"},
		"Manufacturing":           {"manufacturing", "production", "factory", "assembly", "industrial", "operations"},
		"Education":               {"education", "teacher", "professor", "university", "school", "teaching", "academic"},
		"Consulting":              {"consulting", "consultant", "advisory", "strategy", "management consulting"},
		"Marketing & Advertising": {"marketing", "advertising", "brand", "campaign", "digital marketing", "seo", "social media"},
	})
}

// NewRoleClassifier returns the keyword classifier over the built-in job
// role label table.
func NewRoleClassifier() *KeywordClassifier {
	return NewKeywordClassifier(map[string][]string{
		"Software Engineer":    {"software engineer", "developer", "programmer", "coding", "backend", "frontend"},
		"Data Scientist":       {"data scientist", "machine learning", "data analysis", "ml", "ai", "data mining"},
		"Product Manager":      {"product manager", "product management", "product owner", "roadmap"},
		"DevOps Engineer":      {"devops", "ci/cd", "kubernetes", "docker", "infrastructure", "deployment"},
		"Full Stack Developer": {"full stack", "fullstack", "full-stack"},
		"Business Analyst":     {"business analyst", "requirements", "stakeholder", "business intelligence"},
		"Project Manager":      {"project manager", "project management", "scrum master", "agile", "pmp"},
	})
}
