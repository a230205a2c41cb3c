// Package render produces the standalone HTML page for a CV document that
// the PDF renderer prints. Templates are embedded so the binary is
// self-contained.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"cv-builder-backend/internal/cv"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Template names accepted by HTML.
const (
	TemplateClassic = "classic"
	TemplateModern  = "modern"
)

// ErrUnknownTemplate means the requested template name does not exist.
var ErrUnknownTemplate = fmt.Errorf("render: unknown template")

var templates = template.Must(template.New("cv").Funcs(template.FuncMap{
	// Skill and description lines carry <strong> markup that must render
	// as markup, not text.
	"raw": func(s string) template.HTML { return template.HTML(s) },
}).ParseFS(templateFS, "templates/*.tmpl"))

// HTML renders the document with the named template. An empty name falls
// back to the classic layout.
func HTML(doc cv.Document, name string) (string, error) {
	if name == "" {
		name = TemplateClassic
	}
	switch name {
	case TemplateClassic, TemplateModern:
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name+".html.tmpl", doc); err != nil {
		return "", fmt.Errorf("render: execute %s: %w", name, err)
	}
	return buf.String(), nil
}
