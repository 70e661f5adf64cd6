package refining

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-writer/internal/llm"
	"github.com/jonathan/resume-writer/internal/types"
)

func TestBuildRewritePrompt_ContainsContent(t *testing.T) {
	prompt := buildRewritePrompt("led a team of five", types.ContentExperience, "", "")
	assert.Contains(t, prompt, "led a team of five")
}

func TestBuildRewritePrompt_FeedbackIncludedVerbatim(t *testing.T) {
	feedback := "Quantify the team size and name the shipped system."
	prompt := buildRewritePrompt("led a team", types.ContentExperience, "", feedback)
	assert.Contains(t, prompt, feedback)
}

func TestBuildRewritePrompt_TargetIncluded(t *testing.T) {
	prompt := buildRewritePrompt("led a team", types.ContentSummary,
		"Backend role requiring Go and Kubernetes", "")
	assert.Contains(t, prompt, "Backend role requiring Go and Kubernetes")
}

func TestBuildRewritePrompt_NoTargetSectionWhenAbsent(t *testing.T) {
	with := buildRewritePrompt("text", types.ContentSummary, "some target", "")
	without := buildRewritePrompt("text", types.ContentSummary, "", "")
	assert.NotEqual(t, with, without)
	assert.NotContains(t, without, "some target")
}

func TestFocusKey_TargetSwitchesRubric(t *testing.T) {
	assert.Equal(t, "focus-summary", focusKey(types.ContentSummary, false))
	assert.Equal(t, "focus-summary-target", focusKey(types.ContentSummary, true))
	assert.Equal(t, "focus-skills", focusKey(types.ContentSkills, false))
	assert.Equal(t, "focus-experience", focusKey(types.ContentExperience, false))
	assert.Equal(t, "focus-experience-target", focusKey(types.ContentProjects, true))
}

func TestRewriter_TrimsResponse(t *testing.T) {
	client := &fakeClient{rewriteResponses: []string{"\n  polished text  \n"}}
	rewriter := NewRewriter(client, llm.DefaultRewriterConfig())

	out, err := rewriter.Rewrite(context.Background(), "rough text", types.ContentSummary, "", "")
	require.NoError(t, err)
	assert.Equal(t, "polished text", out)
}

func TestRewriter_UsesConfiguredSampling(t *testing.T) {
	client := &fakeClient{rewriteResponses: []string{"out"}}
	config := llm.AgentConfig{Tier: llm.TierAdvanced, Temperature: 0.8}
	rewriter := NewRewriter(client, config)

	_, err := rewriter.Rewrite(context.Background(), "text", types.ContentSummary, "", "")
	require.NoError(t, err)

	require.Len(t, client.requests, 1)
	assert.Equal(t, llm.TierAdvanced, client.requests[0].Tier)
	assert.InDelta(t, 0.8, client.requests[0].Temperature, 0.001)
	assert.NotEmpty(t, client.requests[0].System)
}
