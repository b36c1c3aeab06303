package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setCompileFlags(t *testing.T, in string) {
	t.Helper()
	compileInput, compileWorkDir, compileConfigFile, compileOutput = in, t.TempDir(), "", ""
	t.Cleanup(func() {
		compileInput, compileWorkDir, compileConfigFile, compileOutput = "", "", "", ""
	})
}

func TestCompile_SkipsWithoutCompiler(t *testing.T) {
	t.Setenv("PATH", "")
	setCompileFlags(t, writeFile(t, "resume.tex", rendering.GenerateLaTeX(nil)))

	assert.NoError(t, runCompile(compileCmd, nil))
}

func TestCompile_StructureError(t *testing.T) {
	t.Setenv("PATH", "")
	setCompileFlags(t, writeFile(t, "resume.tex", "\\documentclass{article}\n\\begin{document}\n{unbalanced\n\\end{document}\n"))

	err := runCompile(compileCmd, nil)
	require.Error(t, err)
	var structureErr *validation.StructureError
	assert.True(t, errors.As(err, &structureErr))
}

func TestCompile_MissingFile(t *testing.T) {
	setCompileFlags(t, "/nonexistent/resume.tex")

	err := runCompile(compileCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LaTeX file not found")
}

func TestCompile_WorkDirFromConfig(t *testing.T) {
	t.Setenv("PATH", "")
	setCompileFlags(t, writeFile(t, "resume.tex", rendering.GenerateLaTeX(nil)))
	compileWorkDir = ""
	compileConfigFile = writeFile(t, "config.yaml", "work_dir: "+t.TempDir()+"\n")

	assert.NoError(t, runCompile(compileCmd, nil))
}

// compiledReport fakes a pdflatex run: a PDF plus aux files in dir
func compiledReport(t *testing.T, dir string) *validation.Report {
	t.Helper()
	for _, name := range []string{"resume.pdf", "resume.aux", "resume.log"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0644))
	}
	return &validation.Report{
		Path:     filepath.Join(t.TempDir(), "resume.tex"),
		Compiled: true,
		PDFPath:  filepath.Join(dir, "resume.pdf"),
	}
}

func TestKeepPDF_TempDirIsRemovedAfterCopy(t *testing.T) {
	tempDir, err := os.MkdirTemp(t.TempDir(), "latex-compile-*")
	require.NoError(t, err)
	report := compiledReport(t, tempDir)

	require.NoError(t, keepPDF(report, true, ""))

	want := filepath.Join(filepath.Dir(report.Path), "resume.pdf")
	assert.Equal(t, want, report.PDFPath)
	assert.Equal(t, "resume.pdf", readFile(t, want))
	assert.NoDirExists(t, tempDir)
}

func TestKeepPDF_WorkDirKeepsPDF(t *testing.T) {
	workDir := t.TempDir()
	report := compiledReport(t, workDir)

	require.NoError(t, keepPDF(report, false, ""))

	assert.Equal(t, filepath.Join(workDir, "resume.pdf"), report.PDFPath)
	assert.FileExists(t, report.PDFPath)
	assert.NoFileExists(t, filepath.Join(workDir, "resume.aux"))
	assert.NoFileExists(t, filepath.Join(workDir, "resume.log"))
}

func TestKeepPDF_CopiesToOut(t *testing.T) {
	workDir := t.TempDir()
	report := compiledReport(t, workDir)
	out := filepath.Join(t.TempDir(), "nested", "ada.pdf")

	require.NoError(t, keepPDF(report, false, out))

	assert.Equal(t, out, report.PDFPath)
	assert.Equal(t, "resume.pdf", readFile(t, out))
	assert.FileExists(t, filepath.Join(workDir, "resume.pdf"))
}
