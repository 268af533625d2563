// ABOUTME: Template loading and page models for the server-rendered dashboard
// ABOUTME: Templates are embedded so the binary has no runtime file dependencies

package web

import (
	"embed"
	"html/template"
	"time"

	"pakgov-intel/core/domain"
	"pakgov-intel/core/markdown"
)

//go:embed templates/*.tmpl templates/components/*.tmpl
var templateFS embed.FS

// loadTemplates parses the page template and its components
func loadTemplates() (*template.Template, error) {
	tmpl := template.New("").Funcs(template.FuncMap{
		"sourceLabel": sourceLabel,
	})

	if _, err := tmpl.ParseFS(templateFS, "templates/*.tmpl"); err != nil {
		return nil, err
	}
	if _, err := tmpl.ParseFS(templateFS, "templates/components/*.tmpl"); err != nil {
		return nil, err
	}

	return tmpl, nil
}

// pageData is everything the dashboard template renders
type pageData struct {
	// Query is echoed back into the search box
	Query         string
	Presets       []domain.Preset
	Error         string
	View          *viewData
	ExportEnabled bool
}

type viewData struct {
	Topic       string
	Blocks      []markdown.Block
	Sources     []domain.SourceItem
	GeneratedAt string
}

func newViewData(v *domain.View) *viewData {
	if v == nil {
		return nil
	}
	return &viewData{
		Topic:       v.Topic,
		Blocks:      markdown.Render(v.Result.MarkdownReport),
		Sources:     v.Result.Sources,
		GeneratedAt: v.CreatedAt.UTC().Format(time.RFC1123),
	}
}

// sourceLabel is the badge shown on a source card
func sourceLabel(s domain.SourceItem) string {
	if s.Source == "" {
		return "WEB"
	}
	return s.Source
}
