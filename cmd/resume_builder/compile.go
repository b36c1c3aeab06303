package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/validation"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Check and compile a LaTeX resume",
	Long:  "Checks a .tex file for structural problems, then compiles it with pdflatex when a TeX distribution is installed.",
	RunE:  runCompile,
}

var (
	compileInput      string
	compileWorkDir    string
	compileConfigFile string
	compileOutput     string
)

func init() {
	compileCmd.Flags().StringVarP(&compileInput, "in", "i", "", "Path to LaTeX file (required)")
	compileCmd.Flags().StringVar(&compileWorkDir, "work-dir", "", "Directory for compiler output (defaults to the config work_dir or LATEX_WORK_DIR, then a temporary directory)")
	compileCmd.Flags().StringVarP(&compileConfigFile, "config", "c", "", "Path to JSON or YAML config file")
	compileCmd.Flags().StringVarP(&compileOutput, "out", "o", "", "Where to copy the compiled PDF (defaults to the input path with a .pdf extension when no work dir is set)")

	if err := compileCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(compileInput); os.IsNotExist(err) {
		return fmt.Errorf("LaTeX file not found: %s", compileInput)
	}

	workDir := compileWorkDir
	if workDir == "" {
		cfg, err := config.Load(compileConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		workDir = cfg.WorkDir
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	report, err := validation.ValidateFile(ctx, compileInput, validation.Options{Compile: true, WorkDir: workDir})
	if err == nil && report.Compiled {
		if keepErr := keepPDF(report, workDir == "", compileOutput); keepErr != nil {
			return keepErr
		}
	}
	observability.NewPrinter(os.Stdout).PrintReport(report)
	if err != nil {
		var structureErr *validation.StructureError
		var compilationErr *validation.CompilationError
		if errors.As(err, &structureErr) || errors.As(err, &compilationErr) {
			return fmt.Errorf("validation failed: %w", err)
		}
		return fmt.Errorf("failed to validate LaTeX: %w", err)
	}

	if report.Skipped != "" {
		fmt.Fprintf(os.Stderr, "Warning: compilation skipped: %s\n", report.Skipped)
	}
	return nil
}

// keepPDF copies the compiled PDF to out and removes the compiler's
// auxiliary files. A temporary work dir is removed entirely, so its PDF is
// always copied next to the input unless out says otherwise.
func keepPDF(report *validation.Report, tempDir bool, out string) error {
	workDir := filepath.Dir(report.PDFPath)
	if out == "" && tempDir {
		out = strings.TrimSuffix(report.Path, filepath.Ext(report.Path)) + ".pdf"
	}

	if out != "" && out != report.PDFPath {
		content, err := os.ReadFile(report.PDFPath)
		if err != nil {
			return fmt.Errorf("failed to read compiled PDF: %w", err)
		}
		if err := writeOutput(out, content); err != nil {
			return err
		}
		report.PDFPath = out
	}

	if err := validation.CleanupCompilationArtifacts(workDir); err != nil {
		return fmt.Errorf("failed to clean up %s: %w", workDir, err)
	}
	return nil
}
