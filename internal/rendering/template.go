package rendering

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/jonathan/resume-builder/internal/types"
)

// TemplateData is what a custom LaTeX template executes against
type TemplateData struct {
	*Document
	Preamble   string
	Terminator string
}

// templateFuncs are available to custom templates. Templates receive raw
// text and must pass it through escape (or url for \href targets).
var templateFuncs = template.FuncMap{
	"escape": EscapeLaTeX,
	"url":    EscapeURL,
	"upper":  strings.ToUpper,
	"line":   latexLine,
}

// RenderTemplate renders a snapshot through a user-supplied text/template file
func RenderTemplate(templatePath string, snap *types.Snapshot) (string, error) {
	tmpl, err := parseTemplate(templatePath)
	if err != nil {
		return "", err
	}

	data := TemplateData{
		Document:   BuildDocument(snap),
		Preamble:   Preamble,
		Terminator: Terminator,
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{
			Path:    templatePath,
			Message: "failed to execute template",
			Cause:   err,
		}
	}

	return result.String(), nil
}

// parseTemplate reads and parses a LaTeX template file
func parseTemplate(templatePath string) (*template.Template, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Path:    templatePath,
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Path:    templatePath,
			Message: "failed to read template file",
			Cause:   err,
		}
	}

	tmpl, err := template.New("resume").Funcs(templateFuncs).Parse(string(content))
	if err != nil {
		return nil, &TemplateError{
			Path:    templatePath,
			Message: "failed to parse template",
			Cause:   err,
		}
	}

	return tmpl, nil
}
