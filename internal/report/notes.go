// internal/report/notes.go
package report

import (
	"html/template"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// NotesMarkdown returns the footnote as a markdown caption, with the MACE
// direction emphasised.
func NotesMarkdown(notes []string) string {
	var b strings.Builder
	b.WriteString("**Notes**\n\n")
	for _, note := range notes {
		note = strings.Replace(note, "lower is better", "**lower** is better", 1)
		b.WriteString("- ")
		b.WriteString(note)
		b.WriteString("\n")
	}
	return b.String()
}

// NotesHTML renders the footnote markdown to HTML. Smartypants is left off
// so the note text reaches the page unchanged.
func NotesHTML(notes []string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse([]byte(NotesMarkdown(notes)))
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.HrefTargetBlank})
	return template.HTML(markdown.Render(doc, renderer))
}
