// Package markdown renders client notes to sanitized HTML. Notes are
// operator-entered Markdown; the output is embedded directly in the UI
// so it always passes through the sanitizer.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

type NotesRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewNotesRenderer() *NotesRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Strikethrough,
			extension.TaskList,
			extension.Linkify,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "span", "div", "pre")
	// Task list checkboxes survive sanitization; everything else on
	// input elements is stripped.
	policy.AllowAttrs("type", "checked", "disabled").OnElements("input")

	return &NotesRenderer{
		md:     md,
		policy: policy,
	}
}

// Render converts Markdown to sanitized HTML.
func (r *NotesRenderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}
