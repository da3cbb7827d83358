package profile

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jfelix/resume-matcher/internal/classify"
	"github.com/jfelix/resume-matcher/internal/education"
	"github.com/jfelix/resume-matcher/internal/entities"
	"github.com/jfelix/resume-matcher/internal/experience"
	"github.com/jfelix/resume-matcher/internal/extract"
	"github.com/jfelix/resume-matcher/internal/sections"
	"github.com/jfelix/resume-matcher/internal/skills"
	"github.com/jfelix/resume-matcher/internal/types"
)

// Builder wires the extraction components together. Construct once and share;
// every invocation of StructureDocument operates on its own inputs and
// outputs, so no locking is needed for parallel documents.
type Builder struct {
	taxonomy   *skills.Taxonomy
	level      classify.LevelClassifier
	industry   *classify.KeywordClassifier
	role       *classify.KeywordClassifier
	experience *experience.Extractor
	now        func() time.Time
}

// Option customizes a Builder.
type Option func(*Builder)

// WithTaxonomy replaces the default skill taxonomy.
func WithTaxonomy(taxonomy *skills.Taxonomy) Option {
	return func(b *Builder) {
		b.taxonomy = taxonomy
		b.experience = experience.NewExtractor(taxonomy)
	}
}

// WithLevelClassifier replaces the default keyword level classifier.
func WithLevelClassifier(level classify.LevelClassifier) Option {
	return func(b *Builder) { b.level = level }
}

// WithClock fixes the time source. Tests use this to pin "present" dates.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// NewBuilder returns a builder with the default component set.
func NewBuilder(opts ...Option) *Builder {
	taxonomy := skills.NewTaxonomy(skills.DefaultVocabulary())
	b := &Builder{
		taxonomy:   taxonomy,
		level:      classify.NewKeywordLevelClassifier(classify.DefaultLevelKeywords()),
		industry:   classify.NewIndustryClassifier(),
		role:       classify.NewRoleClassifier(),
		experience: experience.NewExtractor(taxonomy),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// StructureDocument turns raw resume text plus externally recognized
// entities into a structured profile. The external entity set may be nil or
// all-empty; the result is then a sparse but valid profile. Independent
// sub-extractions run concurrently and are joined before assembly.
func (b *Builder) StructureDocument(ctx context.Context, rawText string, external *types.ExtractedEntities) (*types.StructuredProfile, error) {
	text := strings.TrimSpace(rawText)
	if len(text) < MinInputLength {
		return nil, &ErrInputTooSparse{Length: len(text)}
	}

	var (
		patterns types.ExtractedEntities
		skillSet types.SkillSet
		summary  string
	)

	// The branches share read-only access to text and write disjoint
	// variables; results are joined before any of them is read.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		patterns = types.ExtractedEntities{
			Emails: extract.Emails(text),
			Phones: extract.Phones(text),
			URLs:   extract.URLs(text),
			Dates:  extract.Years(text),
		}
		return gctx.Err()
	})
	g.Go(func() error {
		skillSet = b.taxonomy.Categorize(b.rawSkills(text), text)
		return gctx.Err()
	})
	g.Go(func() error {
		summary = summaryText(text)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := patterns.Merge(external)
	contact := entities.Normalize(merged)

	workHistory := b.experience.Extract(text, merged.Organizations)
	totalYears := experience.TotalYears(workHistory, b.now())
	educationEntries := education.Extract(text, merged.Organizations)

	levelYears := classify.YearsUnknown
	if len(workHistory) > 0 {
		levelYears = totalYears
	}
	industryLabel, _ := b.industry.Classify(text).Best()
	roleLabel, _ := b.role.Classify(text).Best()

	result := &types.StructuredProfile{
		ID:                   uuid.NewString(),
		Contact:              contact,
		Summary:              summary,
		Skills:               skillSet,
		WorkHistory:          workHistory,
		Education:            educationEntries,
		TotalExperienceYears: totalYears,
		CareerLevel:          b.level.Classify(text, levelYears),
		Industry:             industryLabel,
		Role:                 roleLabel,
	}
	result.Completeness = completeness(result)
	result.Suggestions = suggestions(result, text)
	return result, nil
}

// rawSkills gathers skill tokens from the skills section listing plus a
// vocabulary scan of the whole document. Section tokens keep skills the
// vocabulary does not know about.
func (b *Builder) rawSkills(text string) []string {
	var raw []string
	if body, ok := sections.Find(text, sections.Skills); ok {
		for _, token := range strings.FieldsFunc(body, func(r rune) bool {
			return r == ',' || r == ';' || r == '|' || r == '\n' || r == '•'
		}) {
			token = strings.TrimSpace(token)
			if len(token) > 0 && len(token) <= 40 && !strings.Contains(token, ":") {
				raw = append(raw, token)
			}
		}
	}
	return append(raw, b.taxonomy.ScanText(text)...)
}

// summaryText joins the first meaningful lines of the summary section.
func summaryText(text string) string {
	body, ok := sections.Find(text, sections.Summary)
	if !ok {
		return ""
	}
	lines := strings.Split(body, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}
	var kept []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) > 20 {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, " ")
}

// completeness scores how much of the profile is filled in, out of 100:
// contact fields 30, work history 30, education 20, skills 20.
func completeness(p *types.StructuredProfile) float64 {
	var score float64
	if p.Contact.FullName != "" {
		score += 10
	}
	if p.Contact.Email != "" {
		score += 10
	}
	if p.Contact.Phone != "" {
		score += 10
	}
	score += minF(30, float64(len(p.WorkHistory))*10)
	score += minF(20, float64(len(p.Education))*10)
	score += minF(20, float64(len(p.Skills.Technical))*2)
	return score
}

func suggestions(p *types.StructuredProfile, text string) []string {
	var out []string
	if p.Contact.Email == "" {
		out = append(out, "Add email address for better visibility")
	}
	if p.Contact.Phone == "" {
		out = append(out, "Include phone number for direct contact")
	}
	if len(p.WorkHistory) < 2 {
		out = append(out, "Add more work experience details to strengthen your profile")
	}
	if len(p.Skills.Technical) < 5 {
		out = append(out, "List more skills to improve searchability")
	}
	if len(p.Education) == 0 {
		out = append(out, "Include educational background")
	}
	if len(text) < 500 {
		out = append(out, "Expand resume content with more details and achievements")
	}
	return out
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
