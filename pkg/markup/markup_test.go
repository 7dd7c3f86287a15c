package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_Bold(t *testing.T) {
	assert.Equal(t, "<strong>Go</strong> rocks", Render("**Go** rocks"))
}

func TestRender_Italic(t *testing.T) {
	assert.Equal(t, "an <em>emphasized</em> word", Render("an *emphasized* word"))
}

func TestRender_BoldInsideItalicText(t *testing.T) {
	// ** is consumed before single *, so bold never degrades into nested <em>.
	assert.Equal(t, "<strong>bold</strong> and <em>italic</em>", Render("**bold** and *italic*"))
}

func TestRender_Bullets(t *testing.T) {
	got := Render("* first\n- second")
	assert.Equal(t, "<li>first</li><br /><li>second</li>", got)
}

func TestRender_StarBulletWithInnerEmphasis(t *testing.T) {
	// The leading "* " is a list marker, not the opening half of an
	// emphasis pair with a later asterisk on the same line.
	assert.Equal(t, "<li>uses <em>Go</em> daily</li>", Render("* uses *Go* daily"))
	assert.Equal(t, "<li>uses <em>Go</em> daily</li>", Render("- uses *Go* daily"))
}

func TestRender_BulletOnlyAtLineStart(t *testing.T) {
	got := Render("2 - 1 = 1")
	assert.NotContains(t, got, "<li>")
}

func TestRender_Paragraphs(t *testing.T) {
	assert.Equal(t, "one</p><p>two", Render("one\n\ntwo"))
}

func TestRender_LineBreaks(t *testing.T) {
	assert.Equal(t, "one<br />two", Render("one\ntwo"))
}

func TestRender_PlainTextPassesThrough(t *testing.T) {
	assert.Equal(t, "just plain text", Render("just plain text"))
}

func TestRender_EscapesHTML(t *testing.T) {
	got := Render("<script>alert('x')</script>")
	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, "&lt;script&gt;")
}

func TestRender_EscapedTextInsideFormatting(t *testing.T) {
	got := Render("**<b>**")
	assert.Equal(t, "<strong>&lt;b&gt;</strong>", got)
}

func TestRender_Empty(t *testing.T) {
	assert.Equal(t, "", Render(""))
}
