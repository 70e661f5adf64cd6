// Package refining implements the iterative content-refinement protocol:
// a rewriter agent and an evaluator agent alternating under a bounded
// convergence loop.
package refining

import (
	"context"
	"strings"

	"github.com/jonathan/resume-writer/internal/llm"
	"github.com/jonathan/resume-writer/internal/prompts"
	"github.com/jonathan/resume-writer/internal/types"
)

// Rewriter is the stateless agent that rewrites content for expressiveness
// and impact.
type Rewriter struct {
	client llm.Client
	config llm.AgentConfig
}

// NewRewriter creates a rewriter backed by the given client.
func NewRewriter(client llm.Client, config llm.AgentConfig) *Rewriter {
	return &Rewriter{client: client, config: config}
}

// Rewrite produces a rewritten version of content. When target is non-empty
// the target-aware guidance rubric applies; when feedback from a previous
// evaluation is present it is incorporated verbatim into the request.
func (r *Rewriter) Rewrite(ctx context.Context, content string, contentType types.ContentType, target, feedback string) (string, error) {
	prompt := buildRewritePrompt(content, contentType, target, feedback)

	response, err := r.client.Generate(ctx, llm.Request{
		System:      prompts.MustGet("refine.json", "rewriter-system"),
		Prompt:      prompt,
		Tier:        r.config.Tier,
		Temperature: r.config.Temperature,
	})
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(response), nil
}

// buildRewritePrompt constructs the rewriter's user prompt.
func buildRewritePrompt(content string, contentType types.ContentType, target, feedback string) string {
	var sb strings.Builder

	promptContext := ""
	if target != "" || feedback != "" {
		promptContext = " based on the provided context"
	}
	sb.WriteString(prompts.Format(prompts.MustGet("refine.json", "rewrite-intro"), map[string]string{
		"ContentType": string(contentType),
		"Context":     promptContext,
	}))

	if target != "" {
		sb.WriteString(prompts.Format(prompts.MustGet("refine.json", "rewrite-target-section"), map[string]string{
			"Target": target,
		}))
	}

	sb.WriteString(prompts.Format(prompts.MustGet("refine.json", "rewrite-content-section"), map[string]string{
		"Content": content,
	}))

	if feedback != "" {
		sb.WriteString(prompts.Format(prompts.MustGet("refine.json", "rewrite-feedback-section"), map[string]string{
			"Feedback": feedback,
		}))
	}

	sb.WriteString(prompts.MustGet("refine.json", "rewrite-focus-header"))
	sb.WriteString(prompts.MustGet("refine.json", focusKey(contentType, target != "")))

	return sb.String()
}

// focusKey selects the guidance rubric for a content type. Presence of a
// target context is the only thing that switches between the generic and
// target-aware rubrics.
func focusKey(contentType types.ContentType, hasTarget bool) string {
	key := "focus-experience"
	switch contentType {
	case types.ContentSummary:
		key = "focus-summary"
	case types.ContentSkills:
		key = "focus-skills"
	}
	if hasTarget {
		key += "-target"
	}
	return key
}
