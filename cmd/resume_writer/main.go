// Package main provides the resume_writer CLI for assembling, refining and
// typesetting LaTeX resumes.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_writer",
	Short: "LaTeX resume generator with AI-assisted content refinement",
	Long:  "Resume Writer assembles structured resume data into a typeset LaTeX document, optionally refining each section through an iterative rewriter/evaluator loop and running a final quality review.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
