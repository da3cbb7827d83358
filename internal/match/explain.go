package match

import (
	"fmt"

	"github.com/jfelix/resume-matcher/internal/types"
)

// Every sentence emitted here is a fixed template parameterized by computed
// scores and gaps. Nothing is generated free-form.

func strengths(categories map[string]types.CategoryScore) []string {
	var out []string
	if categories[types.CategorySkills].Score >= 80 {
		out = append(out, "Strong technical background in required languages")
	}
	if categories[types.CategoryExperience].Score >= 80 {
		out = append(out, "Appropriate experience level for the role")
	}
	if categories[types.CategoryEducation].Score >= 90 {
		out = append(out, "Educational background aligns well")
	}
	if categories[types.CategoryLocation].Score == 100 {
		out = append(out, "Location match eliminates relocation concerns")
	}
	return out
}

func summaryText(jobTitle string, overall int) string {
	level := "partial match"
	switch {
	case overall >= 85:
		level = "strong match"
	case overall >= 70:
		level = "good match"
	}

	summary := fmt.Sprintf(
		"This candidate presents a %s for the %s position with %d%% compatibility. ",
		level, jobTitle, overall)
	if overall >= 80 {
		return summary + "Their technical skills align well with requirements, and their experience level is appropriate for the role."
	}
	return summary + "There are some skill gaps to address, but the foundational experience is present."
}

func keyFactors(profile *types.StructuredProfile, job *types.JobRequirement, skillsOut skillsOutcome, eduScore types.CategoryScore, located bool) []string {
	var factors []string

	totalListed := len(job.RequiredSkills) + len(job.PreferredSkills)
	matchedPct := 100
	if totalListed > 0 {
		matchedPct = len(skillsOut.matchedAll) * 100 / totalListed
	}
	factors = append(factors, fmt.Sprintf(
		"Technical skill set matches %d%% of required technologies", matchedPct))

	if profile.TotalExperienceYears >= job.MinYears {
		factors = append(factors, fmt.Sprintf(
			"Experience level (%s years) meets minimum requirements",
			formatYears(profile.TotalExperienceYears)))
	} else {
		factors = append(factors, fmt.Sprintf(
			"Experience (%s years) slightly below requirement (%s years)",
			formatYears(profile.TotalExperienceYears), formatYears(job.MinYears)))
	}

	if eduScore.Score >= 90 {
		factors = append(factors, "Educational background exceeds minimum requirements")
	}
	if located {
		factors = append(factors, "Location compatibility eliminates relocation concerns")
	}
	return top(factors, 4)
}

func nextSteps(overall int, missingRequired []string) []string {
	var steps []string
	switch {
	case overall >= 85:
		steps = append(steps,
			"Schedule technical interview to assess detailed expertise",
			"Consider candidate for fast-track interview process")
	case overall >= 70:
		steps = append(steps,
			"Conduct phone screen to assess cultural fit",
			"Evaluate compensation expectations")
	default:
		steps = append(steps,
			"Review portfolio and projects before proceeding",
			"Consider for junior or alternative positions")
	}

	if len(missingRequired) > 0 {
		steps = append(steps, fmt.Sprintf(
			"Discuss %s experience during interview", missingRequired[0]))
	}
	return top(steps, 3)
}
