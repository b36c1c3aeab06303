package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"regexp"
	"strings"
	"sync"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/microcosm-cc/bluemonday"
)

// Preview views
const (
	ViewRendered = "rendered"
	ViewSource   = "source"
)

// PreviewOptions controls the HTML preview
type PreviewOptions struct {
	// View is ViewRendered (default) or ViewSource, which shows the
	// generated LaTeX instead of the visual approximation.
	View string
}

// ParseView normalizes a view name; an empty name means ViewRendered
func ParseView(v string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", ViewRendered:
		return ViewRendered, nil
	case ViewSource:
		return ViewSource, nil
	default:
		return "", fmt.Errorf("unknown preview view: %q", v)
	}
}

//go:embed templates/preview.html.tmpl
var previewFS embed.FS

var (
	previewOnce     sync.Once
	previewTemplate *template.Template
	previewErr      error

	previewPolicyOnce sync.Once
	previewPolicy     *bluemonday.Policy
)

func loadPreviewTemplate() (*template.Template, error) {
	previewOnce.Do(func() {
		previewTemplate, previewErr = template.New("preview").ParseFS(previewFS, "templates/preview.html.tmpl")
	})
	return previewTemplate, previewErr
}

// previewSanitizer allows only the markup the preview template emits. Links
// open in a new tab without leaking the referrer.
func previewSanitizer() *bluemonday.Policy {
	previewPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements("div", "header", "section", "h1", "h2", "p", "span", "strong", "em", "pre", "code")
		policy.AllowAttrs("class").Matching(regexp.MustCompile(`^[a-z0-9 -]+$`)).Globally()
		policy.AllowDataAttributes()

		policy.AllowAttrs("href").OnElements("a")
		policy.AllowURLSchemes("http", "https", "mailto")
		policy.RequireParseableURLs(true)
		policy.RequireNoReferrerOnLinks(true)
		policy.AddTargetBlankToFullyQualifiedLinks(true)

		previewPolicy = policy
	})
	return previewPolicy
}

// RenderPreview renders the HTML preview of a snapshot. It formats the same
// Document the LaTeX generator uses, so both outputs contain the same
// sections in the same order.
func RenderPreview(snap *types.Snapshot, opts PreviewOptions) (string, error) {
	if snap == nil {
		snap = &types.Snapshot{}
	}

	view, err := ParseView(opts.View)
	if err != nil {
		return "", &RenderError{Message: "invalid preview options", Cause: err}
	}

	tmpl, err := loadPreviewTemplate()
	if err != nil {
		return "", &RenderError{Message: "failed to load preview template", Cause: err}
	}

	var (
		name string
		data any
	)
	switch {
	case !snap.HasData():
		name = "placeholder"
	case view == ViewSource:
		name, data = "source", GenerateLaTeX(snap)
	default:
		name, data = "rendered", BuildDocument(snap)
	}

	var out strings.Builder
	if err := tmpl.ExecuteTemplate(&out, name, data); err != nil {
		return "", &RenderError{Message: "failed to execute preview template", Cause: err}
	}

	return previewSanitizer().Sanitize(out.String()), nil
}
