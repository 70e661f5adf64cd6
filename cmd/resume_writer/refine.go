package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-writer/internal/config"
	"github.com/jonathan/resume-writer/internal/llm"
	"github.com/jonathan/resume-writer/internal/observability"
	"github.com/jonathan/resume-writer/internal/refining"
	"github.com/jonathan/resume-writer/internal/types"
)

var refineCmd = &cobra.Command{
	Use:   "refine",
	Short: "Refine a single content section through the rewriter/evaluator loop",
	Long:  "Runs one span of resume text through the iterative rewriter/evaluator loop and prints the refined text to stdout.",
	RunE:  runRefine,
}

var (
	refineInputFile  string
	refineType       string
	refineTargetFile string
	refineAPIKey     string
	refineMaxRounds  int
	refineVerbose    bool
)

func init() {
	refineCmd.Flags().StringVarP(&refineInputFile, "input", "i", "", "Path to a text file with the content to refine (required)")
	refineCmd.Flags().StringVar(&refineType, "type", string(types.ContentSummary), "Content type: summary, skills, experience, or projects")
	refineCmd.Flags().StringVarP(&refineTargetFile, "target", "t", "", "Path to target description text file")
	refineCmd.Flags().StringVar(&refineAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	refineCmd.Flags().IntVar(&refineMaxRounds, "max-rounds", refining.DefaultMaxRounds, "Maximum refinement rounds")
	refineCmd.Flags().BoolVarP(&refineVerbose, "verbose", "v", false, "Print the refinement outcome summary")

	if err := refineCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(refineCmd)
}

func runRefine(_ *cobra.Command, _ []string) error {
	contentType := types.ContentType(refineType)
	if !contentType.IsValid() {
		return fmt.Errorf("invalid --type value %q (want summary, skills, experience, or projects)", refineType)
	}

	content, err := os.ReadFile(refineInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	text := strings.TrimSpace(string(content))
	if text == "" {
		return fmt.Errorf("input file %s is empty", refineInputFile)
	}

	ctx := context.Background()

	target := ""
	if refineTargetFile != "" {
		targetContent, err := os.ReadFile(refineTargetFile)
		if err != nil {
			return fmt.Errorf("failed to read target file: %w", err)
		}
		target = strings.TrimSpace(string(targetContent))
	}

	apiKey := config.ResolveAPIKey(refineAPIKey, nil)
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY or use --api-key)")
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	loop := refining.NewDefaultLoop(client, refineMaxRounds)

	unit := types.ContentUnit{Name: refineInputFile, Type: contentType, Text: text}
	outcome, err := loop.Refine(ctx, unit, target)
	if err != nil {
		return fmt.Errorf("refinement failed: %w", err)
	}

	if refineVerbose {
		observability.NewPrinter(os.Stderr).PrintRefinementOutcome(outcome)
	}

	fmt.Fprintln(os.Stdout, outcome.Unit.Text)
	return nil
}
