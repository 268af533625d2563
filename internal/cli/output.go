// ABOUTME: Output formats for scan results: styled terminal, raw markdown and JSON
// ABOUTME: Terminal output renders the markdown export through glamour

package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/glamour"

	"pakgov-intel/core/domain"
	"pakgov-intel/core/report"
	"pakgov-intel/web"
)

const (
	formatTerminal = "terminal"
	formatMarkdown = "markdown"
	formatJSON     = "json"
)

var terminalStyles = map[string]bool{
	"ascii":   true,
	"dark":    true,
	"dracula": true,
	"light":   true,
	"notty":   true,
}

// scanWriter prints a batch of results in one format
type scanWriter struct {
	format string
	style  string
	width  int
}

func newWriter(format, style string, width int) (*scanWriter, error) {
	switch format {
	case formatTerminal, formatMarkdown, formatJSON:
	default:
		return nil, fmt.Errorf("unknown format %q: want terminal, markdown or json", format)
	}
	if format == formatTerminal && !terminalStyles[style] {
		return nil, fmt.Errorf("unknown style %q", style)
	}
	if width <= 0 {
		width = 80
	}
	return &scanWriter{format: format, style: style, width: width}, nil
}

// scanJSON is one element of the json output
type scanJSON struct {
	Topic          string              `json:"topic"`
	MarkdownReport string              `json:"markdownReport,omitempty"`
	Sources        []domain.SourceItem `json:"sources,omitempty"`
	Error          string              `json:"error,omitempty"`
}

func (s *scanWriter) write(w io.Writer, targets []scanTarget, results []report.BatchResult, now time.Time) error {
	if s.format == formatJSON {
		out := make([]scanJSON, len(results))
		for i, r := range results {
			out[i].Topic = targets[i].label
			if r.Err != nil {
				out[i].Error = r.Err.Error()
				continue
			}
			out[i].MarkdownReport = r.Result.MarkdownReport
			out[i].Sources = r.Result.Sources
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	var buf bytes.Buffer
	written := 0
	for i, r := range results {
		if r.Err != nil {
			continue
		}
		if written > 0 {
			buf.WriteString("\n---\n\n")
		}
		view := &domain.View{Topic: targets[i].label, Result: *r.Result, CreatedAt: now}
		if err := web.WriteMarkdown(&buf, view); err != nil {
			return fmt.Errorf("failed to build markdown: %w", err)
		}
		written++
	}
	if written == 0 {
		return nil
	}

	if s.format == formatMarkdown {
		_, err := w.Write(buf.Bytes())
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(s.style),
		glamour.WithWordWrap(s.width),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	rendered, err := r.Render(buf.String())
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = io.WriteString(w, rendered)
	return err
}
