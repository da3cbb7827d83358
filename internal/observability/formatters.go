// Package observability provides formatted output utilities for verbose CLI
// mode and structured logging for the server.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jfelix/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of a structured profile.
func (p *Printer) PrintProfile(profile *types.StructuredProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:       %s\n", orDash(profile.Contact.FullName)))
	sb.WriteString(fmt.Sprintf("Email:      %s\n", orDash(profile.Contact.Email)))
	sb.WriteString(fmt.Sprintf("Level:      %s\n", profile.CareerLevel))
	sb.WriteString(fmt.Sprintf("Experience: %.1f years\n", profile.TotalExperienceYears))
	if profile.Industry != "" {
		sb.WriteString(fmt.Sprintf("Industry:   %s\n", profile.Industry))
	}
	sb.WriteString("\n")

	if len(profile.Skills.Technical) > 0 {
		sb.WriteString("Technical Skills:\n")
		count := min(len(profile.Skills.Technical), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Skills.Technical[i]))
		}
		if len(profile.Skills.Technical) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills.Technical)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(profile.WorkHistory) > 0 {
		sb.WriteString("Work History:\n")
		count := min(len(profile.WorkHistory), 3)
		for i := 0; i < count; i++ {
			entry := profile.WorkHistory[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s\n", entry.Title, entry.Company))
		}
		if len(profile.WorkHistory) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.WorkHistory)-3))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Completeness: %.0f%%", profile.Completeness))
	p.printBox("STRUCTURED PROFILE", sb.String())
}

// PrintMatchResult outputs the scored match with category breakdown and gaps.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job:            %s\n", result.JobTitle))
	sb.WriteString(fmt.Sprintf("Overall Score:  %d / 100\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Confidence:     %.2f\n", result.Confidence))
	sb.WriteString(fmt.Sprintf("Recommendation: %s\n", result.Recommendation))
	sb.WriteString("\n")

	sb.WriteString("Category Scores:\n")
	for _, name := range []string{
		types.CategorySkills, types.CategoryExperience, types.CategoryEducation,
		types.CategoryRole, types.CategoryLocation,
	} {
		category, ok := result.CategoryScores[name]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %-15s %3d (weight %d)\n", name, category.Score, category.Weight))
	}

	if len(result.CriticalGaps) > 0 {
		sb.WriteString("\nCritical Gaps:\n")
		count := min(len(result.CriticalGaps), maxItemsToShow)
		for i := 0; i < count; i++ {
			gap := result.CriticalGaps[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", gap.Missing, gap.Impact))
		}
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
