package refining

import (
	"context"
	"strings"

	"github.com/jonathan/resume-writer/internal/llm"
	"github.com/jonathan/resume-writer/internal/prompts"
	"github.com/jonathan/resume-writer/internal/types"
)

// Verdict tokens the evaluator is instructed to end its response with.
const (
	verdictSatisfied        = "SATISFIED"
	verdictNeedsImprovement = "NEEDS_IMPROVEMENT"
)

// Evaluator is the stateless agent that judges a rewritten candidate
// against the original and produces pass/fail feedback.
type Evaluator struct {
	client llm.Client
	config llm.AgentConfig
}

// NewEvaluator creates an evaluator backed by the given client.
func NewEvaluator(client llm.Client, config llm.AgentConfig) *Evaluator {
	return &Evaluator{client: client, config: config}
}

// Evaluate judges candidate against original. The returned feedback text is
// always populated, satisfied or not, so the caller has an explanation
// either way.
func (e *Evaluator) Evaluate(ctx context.Context, original, candidate string, contentType types.ContentType, target string) (satisfied bool, feedback string, err error) {
	prompt := buildEvaluatePrompt(original, candidate, contentType, target)

	response, err := e.client.Generate(ctx, llm.Request{
		System:      prompts.MustGet("refine.json", "evaluator-system"),
		Prompt:      prompt,
		Tier:        e.config.Tier,
		Temperature: e.config.Temperature,
	})
	if err != nil {
		return false, "", err
	}

	feedback = strings.TrimSpace(response)
	return parseVerdict(feedback), feedback, nil
}

// buildEvaluatePrompt constructs the evaluator's user prompt.
func buildEvaluatePrompt(original, candidate string, contentType types.ContentType, target string) string {
	var sb strings.Builder

	promptContext := ""
	if target != "" {
		promptContext = " and the target role requirements"
	}
	sb.WriteString(prompts.Format(prompts.MustGet("refine.json", "evaluate-intro"), map[string]string{
		"ContentType": string(contentType),
		"Context":     promptContext,
	}))

	if target != "" {
		sb.WriteString(prompts.Format(prompts.MustGet("refine.json", "evaluate-target-section"), map[string]string{
			"Target": target,
		}))
	}

	sb.WriteString(prompts.Format(prompts.MustGet("refine.json", "evaluate-content-section"), map[string]string{
		"Original":  original,
		"Candidate": candidate,
	}))

	sb.WriteString(prompts.MustGet("refine.json", "evaluate-criteria-header"))
	sb.WriteString(prompts.MustGet("refine.json", criteriaKey(contentType, target != "")))
	sb.WriteString(prompts.MustGet("refine.json", "evaluate-verdict-instruction"))

	return sb.String()
}

// criteriaKey selects the evaluation rubric by the same rule the rewriter
// uses for its guidance rubric.
func criteriaKey(contentType types.ContentType, hasTarget bool) string {
	key := "criteria-experience"
	switch contentType {
	case types.ContentSummary:
		key = "criteria-summary"
	case types.ContentSkills:
		key = "criteria-skills"
	}
	if hasTarget {
		key += "-target"
	}
	return key
}

// parseVerdict derives the satisfied decision from the final explicit
// verdict token of the feedback text. NEEDS_IMPROVEMENT wins over SATISFIED
// on the same line, and an absent token means another round is needed.
func parseVerdict(feedback string) bool {
	lines := strings.Split(feedback, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if strings.Contains(line, verdictNeedsImprovement) {
			return false
		}
		return strings.Contains(line, verdictSatisfied)
	}
	return false
}
