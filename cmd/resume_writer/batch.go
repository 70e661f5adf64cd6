package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-writer/internal/batch"
	"github.com/jonathan/resume-writer/internal/config"
	"github.com/jonathan/resume-writer/internal/llm"
	"github.com/jonathan/resume-writer/internal/observability"
	"github.com/jonathan/resume-writer/internal/refining"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Refine many content sections concurrently",
	Long:  "Reads a JSON array of content items, refines each through its own rewriter/evaluator loop run with bounded concurrency, and writes a JSON report. Failed items keep their original text.",
}

var (
	batchItemsFile   string
	batchOutputFile  string
	batchConfigFile  string
	batchAPIKey      string
	batchMaxRounds   int
	batchConcurrency int
	batchVerbose     bool
)

func init() {
	batchCmd.RunE = runBatch
	batchCmd.Flags().StringVarP(&batchItemsFile, "items", "i", "", "Path to a JSON file with the batch items (required)")
	batchCmd.Flags().StringVarP(&batchOutputFile, "out", "o", "", "Path to write the JSON report (default stdout)")
	batchCmd.Flags().StringVar(&batchConfigFile, "config", "", "Path to JSON config file")
	batchCmd.Flags().StringVar(&batchAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	batchCmd.Flags().IntVar(&batchMaxRounds, "max-rounds", refining.DefaultMaxRounds, "Maximum refinement rounds per item")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", batch.DefaultConcurrency, "Maximum items refined in parallel")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print the batch report summary")

	if err := batchCmd.MarkFlagRequired("items"); err != nil {
		panic(fmt.Sprintf("failed to mark items flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, _ []string) error {
	var cfg *config.Config
	if batchConfigFile != "" {
		loaded, err := config.Load(batchConfigFile)
		if err != nil {
			return err
		}
		cfg = loaded
		if !batchCmd.Flags().Changed("max-rounds") && cfg.MaxRounds > 0 {
			batchMaxRounds = cfg.MaxRounds
		}
		if !batchCmd.Flags().Changed("concurrency") && cfg.Concurrency > 0 {
			batchConcurrency = cfg.Concurrency
		}
	}

	content, err := os.ReadFile(batchItemsFile)
	if err != nil {
		return fmt.Errorf("failed to read items file: %w", err)
	}

	var items []batch.Item
	if err := json.Unmarshal(content, &items); err != nil {
		return fmt.Errorf("failed to parse items file: %w", err)
	}
	if len(items) == 0 {
		return fmt.Errorf("items file %s contains no items", batchItemsFile)
	}
	for _, item := range items {
		if !item.Unit.Type.IsValid() {
			return fmt.Errorf("item %s has unknown content type %q", item.ID, item.Unit.Type)
		}
	}

	apiKey := config.ResolveAPIKey(batchAPIKey, cfg)
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY or use --api-key)")
	}

	ctx := context.Background()

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	loop := refining.NewDefaultLoop(client, batchMaxRounds)

	report, err := batch.Run(ctx, loop, items, batchConcurrency)
	if err != nil {
		return fmt.Errorf("batch run aborted: %w", err)
	}

	if batchVerbose {
		observability.NewPrinter(os.Stderr).PrintBatchReport(report)
	}

	encoded, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if batchOutputFile == "" {
		fmt.Fprintln(os.Stdout, string(encoded))
		return nil
	}
	if err := os.WriteFile(batchOutputFile, append(encoded, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Report: %s\n", batchOutputFile)
	return nil
}
