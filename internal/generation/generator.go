// Package generation turns CV request fields into natural-language prompts,
// obtains completions, and normalizes the output shape.
package generation

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Naiitikk/cv-creator/internal/llm"
	"github.com/Naiitikk/cv-creator/internal/prompts"
	"github.com/Naiitikk/cv-creator/internal/types"
)

// DefaultTimeout bounds a full generation round trip. The completion service
// has no timeout of its own; a stalled call would otherwise stall the request
// indefinitely.
const DefaultTimeout = 90 * time.Second

// Generator produces CV prose sections through a completion client.
// The client is injected so tests can substitute a fake.
type Generator struct {
	client  llm.Client
	timeout time.Duration
}

// New creates a Generator backed by the given completion client.
func New(client llm.Client) *Generator {
	return &Generator{client: client, timeout: DefaultTimeout}
}

// WithTimeout overrides the per-request generation timeout. Non-positive
// values disable the bound.
func (g *Generator) WithTimeout(d time.Duration) *Generator {
	g.timeout = d
	return g
}

// BuildSummaryPrompt returns the prompt for a 2-3 sentence professional
// summary. Skills are rendered as a single comma-joined phrase.
func BuildSummaryPrompt(jobTitle string, experience types.Years, skills types.SkillList) string {
	return prompts.Format(prompts.MustGet("summary"), map[string]string{
		"JobTitle":   jobTitle,
		"Experience": string(experience),
		"Skills":     skills.Join(),
	})
}

// BuildExperiencePrompt returns the prompt for 4-5 experience bullet points.
// Callers are expected to have substituted defaults for missing company,
// responsibilities, and achievements.
func BuildExperiencePrompt(jobTitle, company, responsibilities, achievements string) string {
	return prompts.Format(prompts.MustGet("experience"), map[string]string{
		"JobTitle":         jobTitle,
		"Company":          company,
		"Responsibilities": responsibilities,
		"Achievements":     achievements,
	})
}

// BuildSkillsPrompt returns the prompt for a comma-separated list of 10-15
// relevant skills.
func BuildSkillsPrompt(jobTitle string, experience types.Years) string {
	return prompts.Format(prompts.MustGet("skills"), map[string]string{
		"JobTitle":   jobTitle,
		"Experience": string(experience),
	})
}

// BuildCoverLetterPrompt returns the prompt for a role/company-personalized
// cover letter opening paragraph.
func BuildCoverLetterPrompt(jobTitle, company string, experience types.Years) string {
	return prompts.Format(prompts.MustGet("cover_letter"), map[string]string{
		"JobTitle":   jobTitle,
		"Company":    company,
		"Experience": string(experience),
	})
}

// GenerateSections issues the summary, experience, and skills completions for
// one request. The three calls are independent and run concurrently;
// first-failure-wins: if any call fails the whole operation fails and no
// partial result is returned. The skills completion is split on commas and
// trimmed into an ordered list.
func (g *Generator) GenerateSections(ctx context.Context, req *types.CVRequest) (*types.GeneratedContent, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	filled := req.WithDefaults()

	var summary, experience, skillsRaw string
	group, gCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		summary, err = g.client.Complete(gCtx, BuildSummaryPrompt(filled.JobTitle, filled.Experience, filled.Skills))
		return err
	})
	group.Go(func() error {
		var err error
		experience, err = g.client.Complete(gCtx, BuildExperiencePrompt(filled.JobTitle, filled.Company, filled.Responsibilities, filled.Achievements))
		return err
	})
	group.Go(func() error {
		var err error
		skillsRaw, err = g.client.Complete(gCtx, BuildSkillsPrompt(filled.JobTitle, filled.Experience))
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &types.GeneratedContent{
		Summary:               summary,
		ExperienceDescription: experience,
		Skills:                types.SplitSkills(skillsRaw),
	}, nil
}

// GenerateCoverLetter issues the cover-letter completion for one request.
func (g *Generator) GenerateCoverLetter(ctx context.Context, req *types.CoverLetterRequest) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	return g.client.Complete(ctx, BuildCoverLetterPrompt(req.JobTitle, req.Company, req.Experience))
}
