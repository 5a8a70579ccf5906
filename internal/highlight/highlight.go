// Package highlight colors formatted responses for terminal display.
package highlight

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle is the chroma style used when none is given
const DefaultStyle = "monokai"

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// JSON returns text with ANSI colors applied using the JSON lexer. The
// formatter's output is JSON-like rather than strict JSON (no separators
// between members), so lexer error tokens are rendered as plain text.
// On any failure the input is returned unchanged.
func JSON(text, styleName string) string {
	if text == "" {
		return text
	}

	lexer := lexers.Get("json")
	if lexer == nil {
		return text
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return text
	}

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return text
	}
	tokens := iterator.Tokens()
	for i := range tokens {
		if tokens[i].Type == chroma.Error {
			tokens[i].Type = chroma.Text
		}
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, chroma.Literator(tokens...)); err != nil {
		return text
	}

	out := buf.String()
	// Lexers may append a newline the input did not have
	if !strings.HasSuffix(text, "\n") {
		if i := strings.LastIndex(out, "\n"); i >= 0 && ansiPattern.ReplaceAllString(out[i+1:], "") == "" {
			out = out[:i] + out[i+1:]
		}
	}
	return out
}
