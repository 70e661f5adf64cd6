// Package llm provides centralized LLM configuration and client abstractions.
// The core treats the text-generation service as an opaque synchronous
// capability: one prompt in, one text out, can fail.
package llm

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: extraction, basic summarization
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: evaluation, quality review
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning: content rewriting
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
)

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Provider: c.Provider,
		Models:   make(map[ModelTier]string),
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}

// AgentConfig holds sampling parameters for one agent role. Sampling is
// configuration, not behavior: two agents with the same prompts and
// different temperatures are still the same agent.
type AgentConfig struct {
	Tier        ModelTier `json:"tier,omitempty"`
	Temperature float32   `json:"temperature,omitempty"`
}

// DefaultRewriterConfig returns sampling parameters for the content rewriter.
// Higher temperature for more creative rewriting.
func DefaultRewriterConfig() AgentConfig {
	return AgentConfig{Tier: TierAdvanced, Temperature: 0.8}
}

// DefaultEvaluatorConfig returns sampling parameters for the content evaluator.
// Lower temperature for consistent judgements.
func DefaultEvaluatorConfig() AgentConfig {
	return AgentConfig{Tier: TierStandard, Temperature: 0.3}
}

// DefaultCheckerConfig returns sampling parameters for the quality checker.
func DefaultCheckerConfig() AgentConfig {
	return AgentConfig{Tier: TierStandard, Temperature: 0.2}
}
