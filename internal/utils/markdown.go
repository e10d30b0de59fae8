package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	mdParser = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)
	policy = bluemonday.UGCPolicy()
)

func init() {
	policy.AllowImages()
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	policy.RequireNoReferrerOnLinks(true)
}

// RenderMarkdown converts user-written markdown into sanitized HTML.
func RenderMarkdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := mdParser.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source)) // Fallback
	}

	sanitized := policy.SanitizeBytes(buf.Bytes())

	return EnhanceHTMLContent(string(sanitized))
}

// RenderMarkdownCached memoizes RenderMarkdown for stored rows. The key
// carries the row's version stamp, so an edit naturally misses the old entry.
func RenderMarkdownCached(kind string, id uint, version int, source string) template.HTML {
	key := fmt.Sprintf("md:%s:%d:v%d", kind, id, version)
	if cached := GetCache().Get(key); cached != nil {
		if h, ok := cached.(template.HTML); ok {
			return h
		}
	}

	rendered := RenderMarkdown(source)
	GetCache().Set(key, rendered, 10*time.Minute)
	return rendered
}
