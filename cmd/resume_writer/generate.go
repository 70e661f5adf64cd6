package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-writer/internal/compile"
	"github.com/jonathan/resume-writer/internal/config"
	"github.com/jonathan/resume-writer/internal/generator"
	"github.com/jonathan/resume-writer/internal/ingestion"
	"github.com/jonathan/resume-writer/internal/llm"
	"github.com/jonathan/resume-writer/internal/observability"
	"github.com/jonathan/resume-writer/internal/quality"
	"github.com/jonathan/resume-writer/internal/refining"
	"github.com/jonathan/resume-writer/internal/schemas"
	"github.com/jonathan/resume-writer/internal/storage"
	"github.com/jonathan/resume-writer/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a LaTeX resume (and PDF) from structured data",
	Long:  "Assembles structured resume data into a complete LaTeX document, optionally refining sections toward a target description and running the quality gate, then compiles the result to PDF.",
}

var (
	generateDataFile   string
	generateTargetFile string
	generateTargetURL  string
	generateTemplate   string
	generateOutputDir  string
	generateName       string
	generateOnConflict string
	generateConfigFile string
	generateAPIKey     string
	generateMaxRounds  int
	generateRefine     bool
	generateFeedback   bool
	generatePDF        bool
	generateVerbose    bool
)

func init() {
	generateCmd.RunE = runGenerate
	generateCmd.Flags().StringVarP(&generateDataFile, "data", "d", "", "Path to resume data JSON file (required)")
	generateCmd.Flags().StringVarP(&generateTargetFile, "target", "t", "", "Path to target description text file")
	generateCmd.Flags().StringVar(&generateTargetURL, "target-url", "", "URL to fetch the target description from")
	generateCmd.Flags().StringVar(&generateTemplate, "template", "", "Path to LaTeX template (default templates/resume.tex)")
	generateCmd.Flags().StringVarP(&generateOutputDir, "out", "o", "", "Output directory (default output)")
	generateCmd.Flags().StringVarP(&generateName, "name", "n", "", "Document name used for output artifacts")
	generateCmd.Flags().StringVar(&generateOnConflict, "on-conflict", "", "Existing-file resolution: fail, overwrite, or rename (default rename)")
	generateCmd.Flags().StringVar(&generateConfigFile, "config", "", "Path to JSON config file")
	generateCmd.Flags().StringVar(&generateAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	generateCmd.Flags().IntVar(&generateMaxRounds, "max-rounds", refining.DefaultMaxRounds, "Maximum refinement rounds per section")
	generateCmd.Flags().BoolVar(&generateRefine, "refine", false, "Refine sections through the rewriter/evaluator loop")
	generateCmd.Flags().BoolVar(&generateFeedback, "feedback", false, "Run the quality gate over the assembled document")
	generateCmd.Flags().BoolVar(&generatePDF, "pdf", true, "Compile the generated LaTeX to PDF")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print detailed progress information")

	if err := generateCmd.MarkFlagRequired("data"); err != nil {
		panic(fmt.Sprintf("failed to mark data flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg, err := loadGenerateConfig()
	if err != nil {
		return err
	}

	data, err := loadResumeData(cfg.Data)
	if err != nil {
		return err
	}

	ctx := context.Background()

	target, err := resolveTarget(ctx, cfg.Target, cfg.TargetURL)
	if err != nil {
		return err
	}

	var loop *refining.Loop
	var checker *quality.Checker
	if cfg.Refine || cfg.Feedback {
		apiKey := config.ResolveAPIKey(generateAPIKey, cfg)
		if apiKey == "" {
			return fmt.Errorf("API key is required for refinement or feedback (set GEMINI_API_KEY or use --api-key)")
		}

		client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()

		loop = refining.NewDefaultLoop(client, cfg.MaxRounds)
		checker = quality.NewChecker(client, llm.DefaultCheckerConfig())
	}

	gen := generator.New(loop, checker, generator.Options{
		TemplatePath: cfg.Template,
		Refine:       cfg.Refine,
		Feedback:     cfg.Feedback,
		Verbose:      cfg.Verbose,
	})

	session := generator.NewSession(cfg.DocumentName)
	doc, err := gen.Generate(ctx, session, data, target)
	if err != nil {
		return fmt.Errorf("failed to generate document: %w", err)
	}

	base := storage.SafeBaseName(cfg.DocumentName)
	outDir := filepath.Join(cfg.OutputDir, base)
	texPath, err := storage.SaveDocument(outDir, base, ".tex", doc.LaTeX, storage.ConflictPolicy(cfg.OnConflict))
	if err != nil {
		return fmt.Errorf("failed to save document source: %w", err)
	}
	fmt.Fprintf(os.Stdout, "LaTeX source: %s\n", texPath)

	if generatePDF {
		compileSavedDocument(ctx, doc.LaTeX, texPath)
	}

	if doc.Verdict != nil {
		observability.NewPrinter(os.Stdout).PrintQualityVerdict(doc.Verdict)
	}

	return nil
}

// compileSavedDocument compiles the saved source to PDF. Compilation
// failure is surfaced with the raw compiler log but does not fail the
// command: the document source was produced.
func compileSavedDocument(ctx context.Context, latex, texPath string) {
	outDir := filepath.Dir(texPath)
	base := strings.TrimSuffix(filepath.Base(texPath), ".tex")

	result, err := compile.LaTeX(ctx, latex, outDir, base)
	if err != nil {
		var compileErr *compile.CompilationError
		if errors.As(err, &compileErr) && compileErr.LogOutput != "" {
			fmt.Fprintf(os.Stderr, "PDF compilation failed: %v\ncompiler log:\n%s\n", err, compileErr.LogOutput)
		} else {
			fmt.Fprintf(os.Stderr, "PDF compilation failed: %v\n", err)
		}
	}
	if result != nil && result.Success {
		fmt.Fprintf(os.Stdout, "PDF: %s\n", result.PDFPath)
		if pages, err := compile.CountPDFPages(result.PDFPath); err == nil {
			fmt.Fprintf(os.Stdout, "Pages: %d\n", pages)
		}
		compile.CleanupArtifacts(outDir, base)
	}
}

// loadGenerateConfig merges the optional config file with command flags.
// Flags take precedence over file values.
func loadGenerateConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if generateConfigFile != "" {
		loaded, err := config.Load(generateConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if generateDataFile != "" {
		cfg.Data = generateDataFile
	}
	if generateTargetFile != "" {
		cfg.Target = generateTargetFile
	}
	if generateTargetURL != "" {
		cfg.TargetURL = generateTargetURL
	}
	if generateTemplate != "" {
		cfg.Template = generateTemplate
	}
	if generateOutputDir != "" {
		cfg.OutputDir = generateOutputDir
	}
	if generateName != "" {
		cfg.DocumentName = generateName
	}
	if generateOnConflict != "" {
		cfg.OnConflict = generateOnConflict
	}
	// The flag has a non-zero default, so only an explicit flag beats the
	// config file value.
	if generateCmd.Flags().Changed("max-rounds") || cfg.MaxRounds == 0 {
		cfg.MaxRounds = generateMaxRounds
	}
	if generateRefine {
		cfg.Refine = true
	}
	if generateFeedback {
		cfg.Feedback = true
	}
	if generateVerbose {
		cfg.Verbose = true
	}
	cfg.ApplyDefaults()

	if cfg.Target != "" && cfg.TargetURL != "" {
		return nil, fmt.Errorf("--target and --target-url are mutually exclusive")
	}
	if !storage.ConflictPolicy(cfg.OnConflict).IsValid() {
		return nil, fmt.Errorf("invalid --on-conflict value %q (want fail, overwrite, or rename)", cfg.OnConflict)
	}

	return cfg, nil
}

// loadResumeData reads, schema-validates and unmarshals the resume data file.
func loadResumeData(path string) (*types.ResumeData, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume data file: %w", err)
	}

	if err := schemas.ValidateResumeData(content); err != nil {
		return nil, fmt.Errorf("resume data does not match schema: %w", err)
	}

	var data types.ResumeData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume data JSON: %w", err)
	}

	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("resume data is missing required fields: %w", err)
	}

	return &data, nil
}

// resolveTarget loads the target description from a file or URL. Both empty
// means generic refinement.
func resolveTarget(ctx context.Context, targetFile, targetURL string) (string, error) {
	switch {
	case targetFile != "":
		content, err := os.ReadFile(targetFile)
		if err != nil {
			return "", fmt.Errorf("failed to read target file: %w", err)
		}
		return strings.TrimSpace(string(content)), nil
	case targetURL != "":
		target, err := ingestion.TargetFromURL(ctx, targetURL)
		if err != nil {
			return "", fmt.Errorf("failed to fetch target description: %w", err)
		}
		return target, nil
	default:
		return "", nil
	}
}
