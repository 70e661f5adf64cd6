package quality

import (
	"context"

	"github.com/jonathan/resume-writer/internal/llm"
	"github.com/jonathan/resume-writer/internal/prompts"
	"github.com/jonathan/resume-writer/internal/types"
)

// Checker runs the quality gate once against a fully assembled document.
type Checker struct {
	client llm.Client
	config llm.AgentConfig
}

// NewChecker creates a checker backed by the given client.
func NewChecker(client llm.Client, config llm.AgentConfig) *Checker {
	return &Checker{client: client, config: config}
}

// Check reviews the assembled LaTeX document and returns the parsed
// verdict. A malformed response is not an error; ParseVerdict applies the
// documented defaults.
func (c *Checker) Check(ctx context.Context, latexContent string) (*types.QualityVerdict, error) {
	prompt := prompts.Format(prompts.MustGet("quality.json", "check-document"), map[string]string{
		"Content": latexContent,
	})

	response, err := c.client.Generate(ctx, llm.Request{
		System:      prompts.MustGet("quality.json", "checker-system"),
		Prompt:      prompt,
		Tier:        c.config.Tier,
		Temperature: c.config.Temperature,
	})
	if err != nil {
		return nil, err
	}

	return ParseVerdict(response), nil
}
