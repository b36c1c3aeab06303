package validation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckStructure_ValidDocument(t *testing.T) {
	source := `\documentclass{article}
\begin{document}
\textbf{Name} $\cdot$ 100\% \& more \{braces\} % comment with & and #
\begin{tabular}{ll} a & b \end{tabular}
\href{https://x.dev/a_b~c}{Site}
\end{document}
`
	assert.Empty(t, CheckStructure(source))
}

func TestCheckStructure_Problems(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		message string
	}{
		{"unbalanced open", `\textbf{oops`, "unclosed brace"},
		{"unbalanced close", `oops}`, "unmatched closing brace"},
		{"stray ampersand", `R&D`, "alignment tab"},
		{"hash", `issue #1`, "parameter character"},
		{"underscore", `snake_case`, "outside math mode"},
		{"dollar", `costs $5`, "unterminated math shift"},
		{"env mismatch", "\\begin{itemize}\n\\end{center}", "does not match"},
		{"env unclosed", `\begin{itemize}`, "never closed"},
		{"href unterminated", `\href{https://x`, "unterminated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := CheckStructure(tt.source)
			require.NotEmpty(t, issues)
			found := false
			for _, issue := range issues {
				if strings.Contains(issue.Message, tt.message) {
					found = true
				}
			}
			assert.True(t, found, "expected an issue containing %q, got %+v", tt.message, issues)
		})
	}
}

// Generated output must stay structurally valid whatever users type.
func TestCheckStructure_GeneratedOutputWithHostileText(t *testing.T) {
	hostile := `R&D {lead} 100% #1 $5 x^2 snake_case ~home \textbf{x} <tag> | pipe` + "\n\nnew paragraph"

	snap := &types.Snapshot{
		Personal: types.PersonalInfo{
			Name: hostile, Email: hostile, Phone: hostile, Address: hostile,
			LinkedIn: "https://linkedin.com/in/{x}%20#y", GitHub: `https://github.com/a_b\c`, Website: hostile,
		},
		Education: []types.EducationItem{{
			ID: "e1", Institution: hostile, Degree: hostile, FieldOfStudy: hostile,
			StartDate: hostile, EndDate: hostile, Location: hostile, GPA: hostile, Description: hostile,
		}},
		Experience: []types.ExperienceItem{{
			ID: "x1", Company: hostile, Position: hostile, StartDate: hostile, Location: hostile, Description: hostile,
		}},
		Skills: []types.SkillItem{
			{ID: "s1", Name: hostile, Proficiency: hostile, Category: hostile},
			{ID: "s2", Name: hostile},
		},
		SkillCategories: []string{hostile},
		Coursework:      []types.CourseworkItem{{ID: "c1", Title: hostile}},
		Projects:        []types.ProjectItem{{ID: "p1", Title: hostile, TechStack: []string{hostile}, Date: hostile, Description: hostile}},
		Certifications:  []types.CertificationItem{{ID: "c1", Title: hostile, Provider: hostile, Date: hostile, Description: hostile}},
		SectionOrder:    types.AllSections,
	}

	source := rendering.GenerateLaTeX(snap)
	assert.Empty(t, CheckStructure(source))
	assert.NoError(t, ValidateSource(source))
}

func TestValidateSource_ReturnsStructureError(t *testing.T) {
	err := ValidateSource(`\begin{document}`)
	require.Error(t, err)
	var structureErr *StructureError
	require.True(t, errors.As(err, &structureErr))
	assert.Len(t, structureErr.Issues, 1)
	assert.Contains(t, err.Error(), "never closed")
}

func TestValidateFile_MissingFile(t *testing.T) {
	_, err := ValidateFile(context.Background(), "/nonexistent/resume.tex", Options{})
	var fileErr *FileReadError
	assert.True(t, errors.As(err, &fileErr))
}

func TestValidateFile_StructureOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.tex")
	require.NoError(t, os.WriteFile(path, []byte(rendering.GenerateLaTeX(nil)), 0644))

	report, err := ValidateFile(context.Background(), path, Options{})
	require.NoError(t, err)
	assert.Empty(t, report.Issues)
	assert.False(t, report.Compiled)
}

func TestValidateFile_CompileSkippedWithoutCompiler(t *testing.T) {
	if CompilerAvailable() {
		t.Skip("pdflatex is installed")
	}

	path := filepath.Join(t.TempDir(), "resume.tex")
	require.NoError(t, os.WriteFile(path, []byte(rendering.GenerateLaTeX(nil)), 0644))

	report, err := ValidateFile(context.Background(), path, Options{Compile: true})
	require.NoError(t, err)
	assert.NotEmpty(t, report.Skipped)
}
