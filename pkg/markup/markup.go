// Package markup renders the restricted formatting subset used in bios and
// project text fields into safe display HTML. Supported syntax: **bold**,
// *italic*, bullet lines starting with "* " or "- ", blank-line paragraph
// breaks and single-newline line breaks. Anything else passes through as
// escaped literal text.
package markup

import (
	"html"
	"regexp"
	"strings"
)

var (
	boldRe   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe = regexp.MustCompile(`\*(.*?)\*`)
	bulletRe = regexp.MustCompile(`(?m)^[*-] (.*)$`)
)

// Render transforms text into display HTML. The raw input is HTML-escaped
// before any substitution runs, so author-supplied angle brackets can never
// reach the output as live markup. Bullets are consumed before italics: a
// "* item" line marker would otherwise pair with a later "*" on the line and
// be eaten as emphasis. Line-oriented substitutions run before the paragraph
// and line-break passes, which consume the newlines they depend on.
func Render(text string) string {
	out := html.EscapeString(text)
	out = boldRe.ReplaceAllString(out, "<strong>$1</strong>")
	out = bulletRe.ReplaceAllString(out, "<li>$1</li>")
	out = italicRe.ReplaceAllString(out, "<em>$1</em>")
	out = strings.ReplaceAll(out, "\n\n", "</p><p>")
	out = strings.ReplaceAll(out, "\n", "<br />")
	return out
}
