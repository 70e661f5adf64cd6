package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-writer/internal/compile"
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile an existing LaTeX document to PDF",
	Long:  "Compiles a .tex file with pdflatex, reports the resulting page count, and removes auxiliary build artifacts.",
	RunE:  runCompile,
}

var (
	compileInputFile string
	compileOutputDir string
	compileKeepAux   bool
)

func init() {
	compileCmd.Flags().StringVarP(&compileInputFile, "input", "i", "", "Path to the .tex file to compile (required)")
	compileCmd.Flags().StringVarP(&compileOutputDir, "out", "o", "", "Output directory (default: directory of the input file)")
	compileCmd.Flags().BoolVar(&compileKeepAux, "keep-aux", false, "Keep auxiliary build artifacts (.aux, .log, .out, .toc)")

	if err := compileCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(compileCmd)
}

func runCompile(_ *cobra.Command, _ []string) error {
	source, err := os.ReadFile(compileInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	outDir := compileOutputDir
	if outDir == "" {
		outDir = filepath.Dir(compileInputFile)
	}
	base := strings.TrimSuffix(filepath.Base(compileInputFile), ".tex")

	result, err := compile.LaTeX(context.Background(), string(source), outDir, base)
	if err != nil {
		var compileErr *compile.CompilationError
		if errors.As(err, &compileErr) && compileErr.LogOutput != "" {
			fmt.Fprintf(os.Stderr, "compiler log:\n%s\n", compileErr.LogOutput)
		}
		if result == nil || !result.Success {
			return fmt.Errorf("compilation failed: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	fmt.Fprintf(os.Stdout, "PDF: %s\n", result.PDFPath)
	if pages, err := compile.CountPDFPages(result.PDFPath); err == nil {
		fmt.Fprintf(os.Stdout, "Pages: %d\n", pages)
	} else {
		fmt.Fprintf(os.Stderr, "Warning: could not count pages: %v\n", err)
	}

	if !compileKeepAux {
		compile.CleanupArtifacts(outDir, base)
	}
	return nil
}
