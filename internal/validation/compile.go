package validation

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	// CompilationTimeout is the maximum time to wait for LaTeX compilation
	CompilationTimeout = 30 * time.Second

	compilerBinary = "pdflatex"
)

// CompilerAvailable reports whether pdflatex is on PATH
func CompilerAvailable() bool {
	_, err := exec.LookPath(compilerBinary)
	return err == nil
}

// CompileLaTeX compiles a LaTeX file using pdflatex. An empty workDir
// compiles in a fresh temporary directory.
func CompileLaTeX(ctx context.Context, texPath string, workDir string) (pdfPath string, logOutput string, err error) {
	if !CompilerAvailable() {
		return "", "", &CompilationError{
			Message: "pdflatex not found in PATH. Please install a LaTeX distribution (e.g., TeX Live, MiKTeX)",
			Cause:   exec.ErrNotFound,
		}
	}

	texContent, err := os.ReadFile(texPath)
	if err != nil {
		return "", "", &FileReadError{
			Message: fmt.Sprintf("failed to read LaTeX file: %s", texPath),
			Cause:   err,
		}
	}

	if workDir == "" {
		workDir, err = os.MkdirTemp("", "latex-compile-*")
	} else {
		err = os.MkdirAll(workDir, 0755)
	}
	if err != nil {
		return "", "", &CompilationError{
			Message: fmt.Sprintf("failed to prepare working directory %q", workDir),
			Cause:   err,
		}
	}

	texBaseName := filepath.Base(texPath)
	workTexPath := filepath.Join(workDir, texBaseName)
	if texPath != workTexPath {
		if err := os.WriteFile(workTexPath, texContent, 0644); err != nil {
			return "", "", &CompilationError{
				Message: fmt.Sprintf("failed to write LaTeX file to working directory: %s", workDir),
				Cause:   err,
			}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, CompilationTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, compilerBinary, "-interaction=nonstopmode", "-halt-on-error", "-output-directory", workDir, workTexPath)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	logOutput = stdout.String() + stderr.String()

	pdfPath = filepath.Join(workDir, strings.TrimSuffix(texBaseName, filepath.Ext(texBaseName))+".pdf")
	if _, err := os.Stat(pdfPath); os.IsNotExist(err) {
		return "", logOutput, &CompilationError{
			Message:   "LaTeX compilation failed: PDF was not generated",
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}

	// pdflatex can write a PDF and still exit non-zero
	if runErr != nil {
		return pdfPath, logOutput, &CompilationError{
			Message:   "LaTeX compilation completed with errors (PDF may be incomplete)",
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}

	return pdfPath, logOutput, nil
}

// CleanupCompilationArtifacts removes temporary files created during compilation
func CleanupCompilationArtifacts(workDir string) error {
	if workDir == "" {
		return nil
	}

	if strings.Contains(filepath.Base(workDir), "latex-compile-") {
		return os.RemoveAll(workDir)
	}

	for _, ext := range []string{".aux", ".log", ".out", ".toc", ".lof", ".lot"} {
		matches, _ := filepath.Glob(filepath.Join(workDir, "*"+ext))
		for _, m := range matches {
			_ = os.Remove(m)
		}
	}

	return nil
}
