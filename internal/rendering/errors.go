package rendering

import "fmt"

// TemplateError represents an error parsing or executing a user-supplied LaTeX template
type TemplateError struct {
	Path    string
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	where := ""
	if e.Path != "" {
		where = " (" + e.Path + ")"
	}
	if e.Cause != nil {
		return fmt.Sprintf("template error%s: %s: %v", where, e.Message, e.Cause)
	}
	return fmt.Sprintf("template error%s: %s", where, e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a failure formatting the HTML preview
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
