package match

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jfelix/resume-matcher/internal/education"
	"github.com/jfelix/resume-matcher/internal/types"
)

// levelRank orders career-level labels from junior to executive. Labels
// outside the table do not participate in the level comparison.
var levelRank = map[string]int{
	"entry":     0,
	"junior":    0,
	"mid":       1,
	"mid-level": 1,
	"senior":    2,
	"lead":      3,
	"principal": 4,
	"director":  5,
	"vp":        6,
	"executive": 7,
	"c-level":   7,
}

// Scorer computes match results for (profile, job) pairs. It is stateless
// apart from configuration and safe for concurrent use.
type Scorer struct {
	cfg      Config
	validate *validator.Validate
}

// NewScorer builds a scorer, rejecting configurations whose weights do not
// sum to 100.
func NewScorer(cfg Config) (*Scorer, error) {
	if sum := cfg.Weights.Sum(); sum != 100 {
		return nil, &ErrInvalidWeights{Sum: sum}
	}
	return &Scorer{cfg: cfg, validate: validator.New()}, nil
}

// Score evaluates the profile against the job across all five categories and
// assembles the explained result. The job is validated first; a requirement
// without a title is rejected with ErrInvalidJob.
func (s *Scorer) Score(profile *types.StructuredProfile, job *types.JobRequirement) (*types.MatchResult, error) {
	if err := s.validate.Struct(job); err != nil {
		return nil, &ErrInvalidJob{Reason: validationReason(err), Err: err}
	}

	skillsOut := s.scoreSkills(profile, job)
	expScore, expGaps := s.scoreExperience(profile, job)
	eduScore, eduImprovements := s.scoreEducation(profile, job)
	roleScore := s.scoreRole(profile, job)
	locScore, located := s.scoreLocation(profile, job)

	categories := map[string]types.CategoryScore{
		types.CategorySkills:     skillsOut.category,
		types.CategoryExperience: expScore,
		types.CategoryEducation:  eduScore,
		types.CategoryRole:       roleScore,
		types.CategoryLocation:   locScore,
	}

	var weighted float64
	for _, category := range categories {
		weighted += float64(category.Score) * float64(category.Weight) / 100
	}
	overall := int(math.Round(weighted))

	critical := append(skillsOut.criticalGaps, expGaps...)
	improvements := append(skillsOut.improvementAreas, eduImprovements...)

	result := &types.MatchResult{
		ID:               uuid.NewString(),
		ProfileID:        profile.ID,
		JobTitle:         job.Title,
		OverallScore:     overall,
		Confidence:       confidence(overall, profile),
		Recommendation:   recommendation(overall),
		CategoryScores:   categories,
		Strengths:        strengths(categories),
		CriticalGaps:     critical,
		ImprovementAreas: improvements,
		Summary:          summaryText(job.Title, overall),
		KeyFactors:       keyFactors(profile, job, skillsOut, eduScore, located),
		NextSteps:        nextSteps(overall, skillsOut.missingRequired),
	}
	return result, nil
}

type skillsOutcome struct {
	category         types.CategoryScore
	matchedAll       []string
	missingRequired  []string
	missingPreferred []string
	criticalGaps     []types.Gap
	improvementAreas []types.Gap
}

// scoreSkills partitions the job's skill lists into matched and missing
// against the profile's canonical skills. Matching is case-insensitive exact.
func (s *Scorer) scoreSkills(profile *types.StructuredProfile, job *types.JobRequirement) skillsOutcome {
	held := make(map[string]bool)
	for _, skill := range profile.Skills.All() {
		held[strings.ToLower(skill)] = true
	}

	var out skillsOutcome
	var matchedRequired []string
	for _, skill := range job.RequiredSkills {
		if held[strings.ToLower(skill)] {
			matchedRequired = append(matchedRequired, skill)
		} else {
			out.missingRequired = append(out.missingRequired, skill)
		}
	}
	var matchedPreferred []string
	for _, skill := range job.PreferredSkills {
		if held[strings.ToLower(skill)] {
			matchedPreferred = append(matchedPreferred, skill)
		} else {
			out.missingPreferred = append(out.missingPreferred, skill)
		}
	}
	out.matchedAll = append(append([]string{}, matchedRequired...), matchedPreferred...)

	score := 100
	if len(job.RequiredSkills) > 0 {
		score = len(matchedRequired) * 100 / len(job.RequiredSkills)
	}

	out.category = types.CategoryScore{
		Score:  score,
		Weight: s.cfg.Weights.Skills,
		Details: map[string]any{
			"required_matched":  len(matchedRequired),
			"total_required":    len(job.RequiredSkills),
			"preferred_matched": len(matchedPreferred),
			"total_preferred":   len(job.PreferredSkills),
			"missing_required":  out.missingRequired,
			"missing_preferred": out.missingPreferred,
		},
	}

	impact := types.ImpactMedium
	if len(out.missingRequired) >= 3 {
		impact = types.ImpactHigh
	}
	for _, skill := range top(out.missingRequired, 2) {
		out.criticalGaps = append(out.criticalGaps, types.Gap{
			Category:   types.CategorySkills,
			Missing:    skill,
			Impact:     impact,
			Suggestion: fmt.Sprintf("Highlight any %s experience or consider training", skill),
		})
	}
	if len(out.missingPreferred) > 0 {
		out.improvementAreas = append(out.improvementAreas, types.Gap{
			Category:   types.CategorySkills,
			Missing:    strings.Join(top(out.missingPreferred, 3), ", "),
			Impact:     types.ImpactLow,
			Suggestion: "Consider obtaining certifications in these technologies",
		})
	}
	return out
}

// scoreExperience starts at 100 and deducts for a years shortfall, an
// industry mismatch, and a career level below the job's.
func (s *Scorer) scoreExperience(profile *types.StructuredProfile, job *types.JobRequirement) (types.CategoryScore, []types.Gap) {
	score := 100.0
	details := map[string]any{
		"candidate_years": profile.TotalExperienceYears,
		"required_years":  job.MinYears,
	}
	var gaps []types.Gap

	if job.MinYears > 0 && profile.TotalExperienceYears < job.MinYears {
		shortfall := job.MinYears - profile.TotalExperienceYears
		score -= shortfall * 10
		details["years_match"] = false
		gaps = append(gaps, types.Gap{
			Category: types.CategoryExperience,
			Missing:  formatYears(shortfall) + " years of experience",
			Impact:   types.ImpactHigh,
			Suggestion: fmt.Sprintf(
				"Highlight relevant project work to demonstrate %s+ years equivalent experience",
				formatYears(job.MinYears)),
		})
	} else {
		details["years_match"] = true
	}

	if job.Industry != "" && profile.Industry != "" {
		matched := strings.EqualFold(job.Industry, profile.Industry)
		details["industry_match"] = matched
		if !matched {
			score -= 15
		}
	}

	if job.Level != "" && profile.CareerLevel != "" {
		profileRank, profileKnown := levelRank[strings.ToLower(string(profile.CareerLevel))]
		jobRank, jobKnown := levelRank[strings.ToLower(job.Level)]
		if profileKnown && jobKnown {
			matched := profileRank >= jobRank
			details["level_match"] = matched
			if !matched {
				score -= 10
			}
		}
	}

	if score < 0 {
		score = 0
	}
	return types.CategoryScore{
		Score:   int(math.Round(score)),
		Weight:  s.cfg.Weights.Experience,
		Details: details,
	}, gaps
}

func (s *Scorer) scoreEducation(profile *types.StructuredProfile, job *types.JobRequirement) (types.CategoryScore, []types.Gap) {
	hasDegree := education.HasDegree(profile.Education)
	hasAdvanced := education.HasAdvancedDegree(profile.Education)

	score := 95
	if job.RequiresDegree && !hasDegree {
		score = 60
	}
	if hasAdvanced {
		score += 10
		if score > 100 {
			score = 100
		}
	}

	var improvements []types.Gap
	if !hasAdvanced && job.PreferredYears > profile.TotalExperienceYears {
		improvements = append(improvements, types.Gap{
			Category:   types.CategoryEducation,
			Missing:    "Advanced degree preferred",
			Impact:     types.ImpactLow,
			Suggestion: "Consider pursuing advanced degree for career growth",
		})
	}

	return types.CategoryScore{
		Score:  score,
		Weight: s.cfg.Weights.Education,
		Details: map[string]any{
			"meets_requirement": !job.RequiresDegree || hasDegree,
			"advanced_degree":   hasAdvanced,
		},
	}, improvements
}

// scoreRole blends title containment with two fixed stand-in factors.
// The non-title factors encode no real signal; see Config.
func (s *Scorer) scoreRole(profile *types.StructuredProfile, job *types.JobRequirement) types.CategoryScore {
	titleSim := s.cfg.TitleDefaultSimilarity
	jobTitle := strings.ToLower(job.Title)
	for _, entry := range profile.WorkHistory {
		if entry.Title != "" && strings.Contains(strings.ToLower(entry.Title), jobTitle) {
			titleSim = s.cfg.TitleContainedSimilarity
			break
		}
	}

	blended := titleSim*0.5 + s.cfg.ResponsibilityOverlap*0.3 + s.cfg.CareerProgression*0.2
	return types.CategoryScore{
		Score:  int(blended * 100),
		Weight: s.cfg.Weights.Role,
		Details: map[string]any{
			"title_similarity":       titleSim,
			"responsibility_overlap": s.cfg.ResponsibilityOverlap,
			"career_progression":     s.cfg.CareerProgression,
		},
	}
}

func (s *Scorer) scoreLocation(profile *types.StructuredProfile, job *types.JobRequirement) (types.CategoryScore, bool) {
	located := job.Location == "" ||
		strings.Contains(strings.ToLower(profile.Contact.Location), strings.ToLower(job.Location))

	score := 50
	if located {
		score = 100
	}
	return types.CategoryScore{
		Score:  score,
		Weight: s.cfg.Weights.Location,
		Details: map[string]any{
			"candidate_location":  profile.Contact.Location,
			"job_location":        job.Location,
			"relocation_required": !located,
		},
	}, located
}

// confidence scales the overall score by a data-completeness factor and caps
// the result below certainty.
func confidence(overall int, profile *types.StructuredProfile) float64 {
	factor := 0.7
	if len(profile.Skills.All()) > 0 && len(profile.WorkHistory) > 0 {
		factor = 0.95
	}
	value := float64(overall) / 100 * factor
	if value > 0.99 {
		value = 0.99
	}
	return math.Round(value*100) / 100
}

func recommendation(overall int) types.Recommendation {
	switch {
	case overall >= 85:
		return types.RecommendationStrong
	case overall >= 75:
		return types.RecommendationGood
	case overall >= 60:
		return types.RecommendationModerate
	default:
		return types.RecommendationWeak
	}
}

func validationReason(err error) string {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		return fmt.Sprintf("field %s failed %s validation", fieldErrors[0].Field(), fieldErrors[0].Tag())
	}
	return err.Error()
}

func formatYears(years float64) string {
	return strconv.FormatFloat(years, 'f', -1, 64)
}

func top(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}
