package layout

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Wrap hard-wraps every line of content so no line is wider than width
// cells. A rune wider than width gets a row of its own.
func Wrap(content string, width int) string {
	if width < 1 {
		width = 1
	}

	var sb strings.Builder
	for i, line := range strings.Split(content, "\n") {
		if i > 0 {
			sb.WriteByte('\n')
		}

		col := 0
		for _, r := range line {
			w := runewidth.RuneWidth(r)
			if col > 0 && col+w > width {
				sb.WriteByte('\n')
				col = 0
			}
			sb.WriteRune(r)
			col += w
		}
	}
	return sb.String()
}

// EditorHeight returns the rows a bubbles textarea of the given inner width
// needs to show content. The textarea wraps at word boundaries and keeps
// one trailing cell for the cursor, so it can need more rows than
// ContentHeight.
func EditorHeight(content string, width int) int {
	if width < 1 {
		width = 1
	}

	rows := 0
	for _, line := range strings.Split(content, "\n") {
		rows += editorRows([]rune(line), width)
	}
	return rows
}

// editorRows counts the rows of one logical line under the textarea's
// word wrap
func editorRows(line []rune, width int) int {
	rows := 1
	lineWidth := 0
	spaces := 0
	var word []rune

	for _, r := range line {
		if unicode.IsSpace(r) {
			spaces++
		} else {
			word = append(word, r)
		}

		if spaces > 0 {
			wordWidth := runewidth.StringWidth(string(word))
			if lineWidth+wordWidth+spaces > width {
				rows++
				lineWidth = wordWidth + spaces
			} else {
				lineWidth += wordWidth + spaces
			}
			spaces = 0
			word = word[:0]
			continue
		}

		// A word that fills the row on its own is broken mid-word
		wordWidth := runewidth.StringWidth(string(word))
		if wordWidth+runewidth.RuneWidth(word[len(word)-1]) > width {
			if lineWidth > 0 {
				rows++
			}
			lineWidth = wordWidth
			word = word[:0]
		}
	}

	// Room for the trailing cursor cell
	if lineWidth+runewidth.StringWidth(string(word))+spaces >= width {
		rows++
	}
	return rows
}
