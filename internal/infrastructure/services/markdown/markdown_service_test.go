package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_BasicMarkdown(t *testing.T) {
	renderer := NewNotesRenderer()

	html, err := renderer.Render("# Note\n\nPagamento **annuale**, rinnovo a dicembre.")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<strong>annuale</strong>")
}

func TestRender_StripsScripts(t *testing.T) {
	renderer := NewNotesRenderer()

	html, err := renderer.Render(`cliente storico <script>alert("x")</script>`)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script")
	assert.Contains(t, html, "cliente storico")
}

func TestRender_TaskList(t *testing.T) {
	renderer := NewNotesRenderer()

	html, err := renderer.Render("- [x] fattura inviata\n- [ ] contratto firmato")
	require.NoError(t, err)
	assert.Contains(t, html, "checkbox")
}

func TestRender_Empty(t *testing.T) {
	renderer := NewNotesRenderer()

	html, err := renderer.Render("")
	require.NoError(t, err)
	assert.Empty(t, html)
}
