package layout

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		content string
		width   int
		want    string
	}{
		{"short", "abc", 10, "abc"},
		{"exact width", "abcde", 5, "abcde"},
		{"long line", "abcdefghij", 4, "abcd\nefgh\nij"},
		{"keeps line breaks", "ab\n\ncdefg", 3, "ab\n\ncde\nfg"},
		{"wide runes", "日本語", 4, "日本\n語"},
		{"rune wider than width", "日x", 1, "日\nx"},
		{"zero width guarded", "ab", 0, "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Wrap(tt.content, tt.width); got != tt.want {
				t.Errorf("Wrap(%q, %d) = %q, want %q", tt.content, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrap_LinesFitWidth(t *testing.T) {
	content := strings.Repeat("line\n", 6) + strings.Repeat("x", 29) + "END"
	wrapped := Wrap(content, 20)

	for _, line := range strings.Split(wrapped, "\n") {
		if w := runewidth.StringWidth(line); w > 20 {
			t.Fatalf("line %q is %d cells wide", line, w)
		}
	}
	if !strings.HasSuffix(wrapped, "END") {
		t.Errorf("wrapped content lost its tail: %q", wrapped)
	}
	if got := ContentHeight(content, 20); got != 8 {
		t.Errorf("ContentHeight() = %d, want 8", got)
	}
}

func TestEditorHeight(t *testing.T) {
	tests := []struct {
		name    string
		content string
		width   int
		want    int
	}{
		{"empty", "", 10, 1},
		{"short", "hello", 10, 1},
		{"multiple lines", "a\nb\nc", 10, 3},
		{"word wrap", "aaaaaa bbbbbb cccccc", 10, 3},
		{"words that fit together", "aa bb cc", 10, 1},
		{"cursor cell at exact width", strings.Repeat("x", 10), 10, 2},
		{"long word breaks", strings.Repeat("x", 25), 10, 3},
		{"trailing spaces", "abcd     ", 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EditorHeight(tt.content, tt.width); got != tt.want {
				t.Errorf("EditorHeight(%q, %d) = %d, want %d", tt.content, tt.width, got, tt.want)
			}
		})
	}
}

func TestEditorHeight_NeverBelowHardWrap(t *testing.T) {
	inputs := []string{
		"aaaaaa bbbbbb cccccc",
		"the quick brown fox jumps over the lazy dog",
		`{"key": "value", "list": [1, 2, 3]}`,
	}
	for _, in := range inputs {
		if e, c := EditorHeight(in, 10), ContentHeight(in, 10); e < c {
			t.Errorf("EditorHeight(%q) = %d below hard wrap %d", in, e, c)
		}
	}
}

func TestClamp(t *testing.T) {
	if h, scroll := Clamp(3, 40); h != 3 || scroll {
		t.Errorf("Clamp(3, 40) = (%d, %v)", h, scroll)
	}
	if h, scroll := Clamp(30, 40); h != 20 || !scroll {
		t.Errorf("Clamp(30, 40) = (%d, %v)", h, scroll)
	}
	if h, scroll := Clamp(0, 40); h != 1 || scroll {
		t.Errorf("Clamp(0, 40) = (%d, %v)", h, scroll)
	}
}
