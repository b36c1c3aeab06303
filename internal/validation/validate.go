package validation

import (
	"context"
	"fmt"
	"os"
)

// Options controls ValidateFile
type Options struct {
	// Compile runs pdflatex after the structural check when it is installed
	Compile bool
	// WorkDir receives compiler output; empty means a temporary directory
	WorkDir string
}

// Report summarizes a validation run
type Report struct {
	Path     string  `json:"path"`
	Issues   []Issue `json:"issues"`
	Compiled bool    `json:"compiled"`
	PDFPath  string  `json:"pdf_path,omitempty"`
	Skipped  string  `json:"skipped,omitempty"`
}

// ValidateSource runs the structural check on in-memory LaTeX
func ValidateSource(source string) error {
	if issues := CheckStructure(source); len(issues) > 0 {
		return &StructureError{Issues: issues}
	}
	return nil
}

// ValidateFile checks a .tex file and optionally compiles it. The report is
// returned even when validation fails.
func ValidateFile(ctx context.Context, texPath string, opts Options) (*Report, error) {
	content, err := os.ReadFile(texPath)
	if err != nil {
		return nil, &FileReadError{
			Message: fmt.Sprintf("failed to read LaTeX file: %s", texPath),
			Cause:   err,
		}
	}

	report := &Report{Path: texPath, Issues: CheckStructure(string(content))}
	if len(report.Issues) > 0 {
		return report, &StructureError{Issues: report.Issues}
	}

	if !opts.Compile {
		return report, nil
	}
	if !CompilerAvailable() {
		report.Skipped = "pdflatex not found in PATH"
		return report, nil
	}

	pdfPath, _, err := CompileLaTeX(ctx, texPath, opts.WorkDir)
	report.PDFPath = pdfPath
	if err != nil {
		return report, err
	}
	report.Compiled = true
	return report, nil
}
