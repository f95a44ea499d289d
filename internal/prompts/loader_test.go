package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	prompt, err := Get("summary")
	require.NoError(t, err)
	assert.Contains(t, prompt, "professional CV summary")
	assert.Contains(t, prompt, "{{.JobTitle}}")
}

func TestGet_InvalidKey(t *testing.T) {
	_, err := Get("nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("nonexistent-key")
	})
}

func TestList_ContainsAllSections(t *testing.T) {
	keys, err := List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"summary", "experience", "skills", "cover_letter"}, keys)
}

func TestFormat(t *testing.T) {
	template := "Position: {{.JobTitle}} at {{.Company}}"
	data := map[string]string{
		"JobTitle": "Software Engineer",
		"Company":  "Acme Corp",
	}

	result := Format(template, data)
	assert.Equal(t, "Position: Software Engineer at Acme Corp", result)
}

func TestFormat_UnknownPlaceholderLeftIntact(t *testing.T) {
	result := Format("Hello {{.Name}}", map[string]string{"Other": "x"})
	assert.Equal(t, "Hello {{.Name}}", result)
}
