// Package richtext turns interpretation text into HTML for the report pages.
//
// Interpretations are written as light markdown and are rendered through
// goldmark, then sanitized. Some interpretations (regression summaries) are
// column-aligned tables that markdown would reflow; those are rendered
// verbatim inside <pre>.
package richtext

import (
	"bytes"
	"html/template"

	"github.com/dalemusser/gradstats/internal/app/system/htmlsanitize"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// VerbatimClass is set on the <pre> wrapping verbatim interpretations.
const VerbatimClass = "interpretation-verbatim"

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
	),
)

// Render returns text as display-ready HTML.
func Render(text string, verbatim bool) template.HTML {
	if verbatim {
		return Verbatim(text)
	}
	out, err := Markdown(text)
	if err != nil {
		return Verbatim(text)
	}
	return out
}

// Markdown converts text with goldmark (GitHub-flavoured) and sanitizes the result.
func Markdown(text string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	return htmlsanitize.SanitizeToHTML(buf.String()), nil
}

// Verbatim escapes text and wraps it in a preformatted block.
func Verbatim(text string) template.HTML {
	return template.HTML(`<pre class="` + VerbatimClass + `">` + template.HTMLEscapeString(text) + `</pre>`)
}
