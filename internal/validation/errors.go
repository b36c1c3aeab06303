// Package validation checks generated LaTeX for structural problems and, when
// a TeX distribution is installed, compiles it.
package validation

import (
	"fmt"
	"strings"
)

// StructureError reports structural problems found in LaTeX source
type StructureError struct {
	Issues []Issue
}

func (e *StructureError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("structure error: %d issue(s)", len(e.Issues)))
	for _, issue := range e.Issues {
		sb.WriteString(fmt.Sprintf("\n  line %d: %s", issue.Line, issue.Message))
	}
	return sb.String()
}

// CompilationError represents a LaTeX compilation failure
type CompilationError struct {
	Message   string
	LogOutput string
	Cause     error
}

func (e *CompilationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("LaTeX compilation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("LaTeX compilation error: %s", e.Message)
}

func (e *CompilationError) Unwrap() error {
	return e.Cause
}

// FileReadError represents an error reading a file
type FileReadError struct {
	Message string
	Cause   error
}

func (e *FileReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("file read error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("file read error: %s", e.Message)
}

func (e *FileReadError) Unwrap() error {
	return e.Cause
}
