// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-writer/internal/batch"
	"github.com/jonathan/resume-writer/internal/refining"
	"github.com/jonathan/resume-writer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintQualityVerdict outputs the quality gate verdict for an assembled document.
func (p *Printer) PrintQualityVerdict(verdict *types.QualityVerdict) {
	if verdict == nil {
		return
	}

	var sb strings.Builder

	status := "⚠ NOT APPROVED"
	if verdict.Approved {
		status = "✅ APPROVED"
	}
	sb.WriteString(fmt.Sprintf("Status:          %s\n", status))
	sb.WriteString(fmt.Sprintf("Estimated pages: %.1f\n", verdict.EstimatedPages))

	if verdict.Feedback != "" {
		sb.WriteString("\nFeedback:\n")
		for _, line := range strings.Split(verdict.Feedback, "\n") {
			sb.WriteString("  " + line + "\n")
		}
	}

	if len(verdict.SuggestedChanges) > 0 {
		sb.WriteString("\nSuggested changes:\n")
		count := min(len(verdict.SuggestedChanges), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", verdict.SuggestedChanges[i]))
		}
		if len(verdict.SuggestedChanges) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(verdict.SuggestedChanges)-maxItemsToShow))
		}
	}

	p.printBox("QUALITY VERDICT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRefinementOutcome outputs the terminal state of one convergence loop run.
func (p *Printer) PrintRefinementOutcome(outcome *refining.Outcome) {
	if outcome == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Section: %s (%s)\n", outcome.Unit.Name, outcome.Unit.Type))
	sb.WriteString(fmt.Sprintf("State:   %s\n", outcome.State))
	sb.WriteString(fmt.Sprintf("Rounds:  %d\n", outcome.RoundsUsed))

	if outcome.Feedback != "" {
		feedback := outcome.Feedback
		if len(feedback) > 200 {
			feedback = feedback[:197] + "..."
		}
		sb.WriteString("\nFinal feedback:\n")
		for _, line := range strings.Split(feedback, "\n") {
			sb.WriteString("  " + line + "\n")
		}
	}

	p.printBox("REFINEMENT OUTCOME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchReport outputs the per-item results of one batch run.
func (p *Printer) PrintBatchReport(report *batch.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Items: %d succeeded, %d failed\n\n",
		report.Succeeded, report.Failed))

	count := min(len(report.Results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := report.Results[i]
		if result.Err != "" {
			sb.WriteString(fmt.Sprintf("✗ %s: %s\n", result.ID, result.Err))
			continue
		}
		sb.WriteString(fmt.Sprintf("✓ %s: %s after %d round(s)\n",
			result.ID, result.State, result.RoundsUsed))
	}
	if len(report.Results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more items", len(report.Results)-maxItemsToShow))
	}

	p.printBox("BATCH REPORT", strings.TrimSuffix(sb.String(), "\n"))
}
