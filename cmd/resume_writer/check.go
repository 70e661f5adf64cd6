package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-writer/internal/config"
	"github.com/jonathan/resume-writer/internal/llm"
	"github.com/jonathan/resume-writer/internal/observability"
	"github.com/jonathan/resume-writer/internal/quality"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the quality gate over an existing LaTeX document",
	Long:  "Reviews a complete LaTeX document for length, formatting issues and content quality, and prints the structured verdict. The command exits non-zero when the document is not approved.",
	RunE:  runCheck,
}

var (
	checkInputFile string
	checkAPIKey    string
)

func init() {
	checkCmd.Flags().StringVarP(&checkInputFile, "input", "i", "", "Path to the LaTeX document to review (required)")
	checkCmd.Flags().StringVar(&checkAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	if err := checkCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(checkInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	apiKey := config.ResolveAPIKey(checkAPIKey, nil)
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY or use --api-key)")
	}

	ctx := context.Background()

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	checker := quality.NewChecker(client, llm.DefaultCheckerConfig())
	verdict, err := checker.Check(ctx, string(content))
	if err != nil {
		return fmt.Errorf("quality check failed: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintQualityVerdict(verdict)

	if !verdict.Approved {
		return fmt.Errorf("document was not approved")
	}
	return nil
}
