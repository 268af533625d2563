// ABOUTME: Markdown export of the current dashboard view
// ABOUTME: Writes the briefing text followed by a table of its sources

package web

import (
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"pakgov-intel/core/domain"

	"github.com/nao1215/markdown"
)

// WriteMarkdown writes v as a standalone markdown document
func WriteMarkdown(w io.Writer, v *domain.View) error {
	md := markdown.NewMarkdown(w)

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Focus Topic", v.Topic},
			{"Generated", v.CreatedAt.UTC().Format(time.RFC3339)},
			{"Sources", strconv.Itoa(len(v.Result.Sources))},
		},
	})
	md.PlainText("")

	md.PlainText(strings.TrimRight(v.Result.MarkdownReport, "\n"))
	md.PlainText("")

	md.H2("Sources")
	md.PlainText("")
	if len(v.Result.Sources) == 0 {
		md.PlainText("No direct citations available.")
	} else {
		items := make([]string, 0, len(v.Result.Sources))
		for _, s := range v.Result.Sources {
			items = append(items, sourceLabel(s)+": "+markdown.Link(s.Title, s.URI))
		}
		md.BulletList(items...)
	}
	md.PlainText("")

	return md.Build()
}

var unsafeFilename = regexp.MustCompile(`[^a-z0-9]+`)

// exportFilename derives a download name from the topic
func exportFilename(topic string) string {
	slug := strings.Trim(unsafeFilename.ReplaceAllString(strings.ToLower(topic), "-"), "-")
	if slug == "" {
		slug = "briefing"
	}
	if len(slug) > 60 {
		slug = strings.TrimRight(slug[:60], "-")
	}
	return slug + ".md"
}
