// Package llm provides the completion-service client used to generate CV prose.
package llm

// Provider represents a completion-service provider.
type Provider string

// Provider constants define supported completion providers.
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// defaultMaxOutputTokens is the per-section generation budget. Prompts ask
// for a few sentences or a short list, so one kilotoken is generous.
const defaultMaxOutputTokens = 1024

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Config holds the completion client configuration.
type Config struct {
	Provider        Provider
	Model           string
	MaxOutputTokens int32
	Temperature     float32
}

// DefaultConfig returns the default configuration (currently Gemini).
func DefaultConfig() *Config {
	return &Config{
		Provider:        ProviderGemini,
		Model:           DefaultModel,
		MaxOutputTokens: defaultMaxOutputTokens,
		Temperature:     0.7,
	}
}

// WithModel returns a copy of the config using the given model name.
// Empty names are ignored.
func (c *Config) WithModel(model string) *Config {
	out := *c
	if model != "" {
		out.Model = model
	}
	return &out
}
