package observability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-writer/internal/batch"
	"github.com/jonathan/resume-writer/internal/refining"
	"github.com/jonathan/resume-writer/internal/types"
)

func TestPrintQualityVerdict_ApprovedBox(t *testing.T) {
	var out strings.Builder
	printer := NewPrinter(&out)

	printer.PrintQualityVerdict(&types.QualityVerdict{
		Approved:         true,
		EstimatedPages:   1.5,
		Feedback:         "Clean layout.",
		SuggestedChanges: []string{"Tighten the summary"},
	})

	text := out.String()
	assert.Contains(t, text, "QUALITY VERDICT")
	assert.Contains(t, text, "APPROVED")
	assert.Contains(t, text, "1.5")
	assert.Contains(t, text, "Clean layout.")
	assert.Contains(t, text, "Tighten the summary")
	assert.Contains(t, text, "┌")
	assert.Contains(t, text, "└")
}

func TestPrintQualityVerdict_NilIsSilent(t *testing.T) {
	var out strings.Builder
	NewPrinter(&out).PrintQualityVerdict(nil)
	assert.Empty(t, out.String())
}

func TestPrintRefinementOutcome(t *testing.T) {
	var out strings.Builder
	NewPrinter(&out).PrintRefinementOutcome(&refining.Outcome{
		Unit:       types.ContentUnit{Name: "summary", Type: types.ContentSummary},
		State:      refining.StateConverged,
		RoundsUsed: 2,
		Satisfied:  true,
		Feedback:   "Strong verbs throughout.",
	})

	text := out.String()
	assert.Contains(t, text, "REFINEMENT OUTCOME")
	assert.Contains(t, text, "summary")
	assert.Contains(t, text, "converged")
	assert.Contains(t, text, "Rounds:  2")
}

func TestPrintBatchReport(t *testing.T) {
	var out strings.Builder
	NewPrinter(&out).PrintBatchReport(&batch.Report{
		Results: []batch.ItemResult{
			{ID: "alpha", State: refining.StateConverged, RoundsUsed: 1},
			{ID: "beta", Err: "service down"},
		},
		Succeeded: 1,
		Failed:    1,
	})

	text := out.String()
	assert.Contains(t, text, "BATCH REPORT")
	assert.Contains(t, text, "1 succeeded, 1 failed")
	assert.Contains(t, text, "alpha")
	assert.Contains(t, text, "beta")
	assert.Contains(t, text, "service down")
}
