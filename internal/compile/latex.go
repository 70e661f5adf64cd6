// Package compile drives the external LaTeX toolchain: compiling document
// source to PDF and counting result pages. The raw compiler log is surfaced
// verbatim on failure; this package never interprets it.
package compile

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Timeout is the maximum time to wait for LaTeX compilation
const Timeout = 30 * time.Second

// Result holds the outcome of one compilation run.
type Result struct {
	Success bool
	PDFPath string
	Log     string
}

// LaTeX compiles LaTeX source text to a PDF in outputDir. The source is
// written to <outputDir>/<baseName>.tex first, so a failed compilation
// still leaves the document source behind.
func LaTeX(ctx context.Context, source, outputDir, baseName string) (*Result, error) {
	if _, err := exec.LookPath("pdflatex"); err != nil {
		return nil, &CompilationError{
			Message: "pdflatex not found in PATH, install a LaTeX distribution (e.g. TeX Live, MiKTeX)",
			Cause:   err,
		}
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, &CompilationError{
			Message: "failed to create output directory " + outputDir,
			Cause:   err,
		}
	}

	texPath := filepath.Join(outputDir, baseName+".tex")
	if err := os.WriteFile(texPath, []byte(source), 0644); err != nil {
		return nil, &CompilationError{
			Message: "failed to write LaTeX source " + texPath,
			Cause:   err,
		}
	}

	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	// -interaction=nonstopmode prevents interactive prompts on errors
	cmd := exec.CommandContext(ctx, "pdflatex",
		"-interaction=nonstopmode", "-output-directory", outputDir, texPath)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	runErr := cmd.Run()

	logOutput := stdout.String() + stderr.String()
	pdfPath := filepath.Join(outputDir, baseName+".pdf")

	if _, err := os.Stat(pdfPath); os.IsNotExist(err) {
		return &Result{Success: false, Log: logOutput}, &CompilationError{
			Message:   "LaTeX compilation failed: PDF was not generated",
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}

	// LaTeX can produce a PDF while still exiting non-zero; treat that as
	// a partial success and hand the log to the caller.
	if runErr != nil {
		return &Result{Success: true, PDFPath: pdfPath, Log: logOutput}, &CompilationError{
			Message:   "LaTeX compilation completed with errors (PDF may be incomplete)",
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}

	return &Result{Success: true, PDFPath: pdfPath, Log: logOutput}, nil
}

// CleanupArtifacts removes the auxiliary files pdflatex leaves next to the
// output (best effort).
func CleanupArtifacts(outputDir, baseName string) {
	for _, ext := range []string{".aux", ".log", ".out", ".toc"} {
		_ = os.Remove(filepath.Join(outputDir, baseName+ext))
	}
}
