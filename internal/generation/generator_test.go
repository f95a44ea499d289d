package generation

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Naiitikk/cv-creator/internal/types"
)

// fakeClient is an in-memory llm.Client whose behavior is keyed off the
// prompt content.
type fakeClient struct {
	mu       sync.Mutex
	prompts  []string
	complete func(prompt string) (string, error)
}

func (f *fakeClient) Complete(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	if f.complete != nil {
		return f.complete(prompt)
	}
	return "generated text", nil
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

func baseRequest() *types.CVRequest {
	return &types.CVRequest{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		JobTitle:   "Software Engineer",
		Experience: "5",
		Skills:     types.SkillList{"Python", "Rust"},
	}
}

func TestBuildSummaryPrompt(t *testing.T) {
	prompt := BuildSummaryPrompt("Software Engineer", "5", types.SkillList{"Python", "Rust"})

	assert.Contains(t, prompt, "Job Title: Software Engineer")
	assert.Contains(t, prompt, "Experience: 5 years")
	assert.Contains(t, prompt, "Key Skills: Python, Rust")
	assert.Contains(t, prompt, "2-3 sentences")
}

func TestBuildExperiencePrompt(t *testing.T) {
	prompt := BuildExperiencePrompt("Software Engineer", "Acme", "Shipped features", "Cut latency 40%")

	assert.Contains(t, prompt, "Company: Acme")
	assert.Contains(t, prompt, "Responsibilities: Shipped features")
	assert.Contains(t, prompt, "Key Achievements: Cut latency 40%")
	assert.Contains(t, prompt, "4-5 bullet points")
}

func TestBuildSkillsPrompt(t *testing.T) {
	prompt := BuildSkillsPrompt("Software Engineer", "5")

	assert.Contains(t, prompt, "Software Engineer with 5 years of experience")
	assert.Contains(t, prompt, "10-15")
	assert.Contains(t, prompt, "comma-separated")
}

func TestBuildCoverLetterPrompt(t *testing.T) {
	prompt := BuildCoverLetterPrompt("Backend Engineer", "Acme", "3")

	assert.Contains(t, prompt, "Position: Backend Engineer")
	assert.Contains(t, prompt, "Company: Acme")
	assert.Contains(t, prompt, "Experience: 3 years in the field")
}

func TestGenerateSections_IssuesThreeCompletions(t *testing.T) {
	client := &fakeClient{complete: func(prompt string) (string, error) {
		if strings.Contains(prompt, "comma-separated") {
			return "Go, SQL , Docker", nil
		}
		return "generated text", nil
	}}

	content, err := New(client).GenerateSections(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.Equal(t, 3, client.calls())
	assert.Equal(t, "generated text", content.Summary)
	assert.Equal(t, "generated text", content.ExperienceDescription)
	assert.Equal(t, types.SkillList{"Go", "SQL", "Docker"}, content.Skills)
}

func TestGenerateSections_AppliesDefaultsToPrompts(t *testing.T) {
	client := &fakeClient{}
	_, err := New(client).GenerateSections(context.Background(), baseRequest())
	require.NoError(t, err)

	joined := strings.Join(client.prompts, "\n---\n")
	assert.Contains(t, joined, "Company: "+types.DefaultCompany)
	assert.Contains(t, joined, "Responsibilities: "+types.DefaultResponsibilities)
	assert.Contains(t, joined, "Key Achievements: "+types.DefaultAchievements)
}

func TestGenerateSections_FirstFailureWins(t *testing.T) {
	upstream := errors.New("model overloaded")
	client := &fakeClient{complete: func(prompt string) (string, error) {
		if strings.Contains(prompt, "comma-separated") {
			return "", upstream
		}
		return "generated text", nil
	}}

	content, err := New(client).GenerateSections(context.Background(), baseRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, upstream)
	assert.Nil(t, content, "no partial results on failure")
}

func TestGenerateSections_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &fakeClient{complete: func(string) (string, error) {
		return "", ctx.Err()
	}}

	_, err := New(client).GenerateSections(ctx, baseRequest())
	assert.Error(t, err)
}

func TestGenerateCoverLetter(t *testing.T) {
	client := &fakeClient{complete: func(prompt string) (string, error) {
		return "Dear Hiring Manager,", nil
	}}

	letter, err := New(client).GenerateCoverLetter(context.Background(), &types.CoverLetterRequest{
		JobTitle:   "Backend Engineer",
		Company:    "Acme",
		Experience: "3",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dear Hiring Manager,", letter)
	assert.Equal(t, 1, client.calls())
}
