package emailhtml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape_FiveEntities(t *testing.T) {
	assert.Equal(t, "&amp;&lt;&gt;&#34;&#39;", Escape(`&<>"'`))
}

func TestEscape_PreservesNewlines(t *testing.T) {
	assert.Equal(t, "line one\nline two", Escape("line one\nline two"))
}

func TestEscape_NotIdempotent(t *testing.T) {
	// Escaping is deliberately applied exactly once in the email pipeline;
	// applying it twice double-encodes.
	once := Escape("<script>")
	twice := Escape(once)

	assert.Equal(t, "&lt;script&gt;", once)
	assert.Equal(t, "&amp;lt;script&amp;gt;", twice)
	assert.NotEqual(t, once, twice)
}

func TestButton(t *testing.T) {
	assert.Empty(t, Button("", "Join"))

	button := Button("https://meet.google.com/abc", "Join")
	assert.Contains(t, button, `href="https://meet.google.com/abc"`)
	assert.Contains(t, button, ">Join</a>")
}

func TestTextBlock_EscapesUserText(t *testing.T) {
	block := TextBlock("Details", `<img src=x onerror=alert(1)>`)

	assert.Contains(t, block, "Details")
	assert.Contains(t, block, "&lt;img")
	assert.NotContains(t, block, "<img")
	assert.Contains(t, block, "white-space: pre-wrap")
}

func TestLayout_WrapsContent(t *testing.T) {
	page := Layout("<p>inner</p>")

	assert.Contains(t, page, "<!DOCTYPE html>")
	assert.Contains(t, page, "<p>inner</p>")
	assert.Contains(t, page, "Automation")
}
