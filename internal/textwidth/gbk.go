package textwidth

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/simplifiedchinese"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Below this code point (CJK Radicals Supplement) terminals draw everything
// single-width, even characters GBK stores in two bytes: accented Latin,
// box drawing, arrows.
const firstWideRune = 0x2E80

// StringWidth returns the widest line of s in monospace columns. ANSI color
// sequences take no space; a character GBK encodes as a double byte takes
// two columns.
func StringWidth(s string) int {
	if s == "" {
		return 0
	}
	maxWidth := 0
	for _, line := range strings.Split(s, "\n") {
		maxWidth = max(maxWidth, lineWidth(line))
	}
	return maxWidth
}

// PadRight appends ASCII spaces until the rendered width matches target.
func PadRight(s string, width int) string {
	diff := width - StringWidth(s)
	if diff <= 0 {
		return s
	}
	return s + strings.Repeat(" ", diff)
}

// PadLeft prepends ASCII spaces until the rendered width matches target.
func PadLeft(s string, width int) string {
	diff := width - StringWidth(s)
	if diff <= 0 {
		return s
	}
	return strings.Repeat(" ", diff) + s
}

// Center pads s on both sides; odd leftovers go to the right.
func Center(s string, width int) string {
	diff := width - StringWidth(s)
	if diff <= 0 {
		return s
	}
	left := diff / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", diff-left)
}

func lineWidth(s string) int {
	width := 0
	for _, r := range stripANSI(s) {
		width += runeWidth(r)
	}
	return width
}

func stripANSI(s string) string {
	return ansiRegexp.ReplaceAllString(s, "")
}

func runeWidth(r rune) int {
	switch {
	case r == '\r' || r == '\n':
		return 0
	case r < firstWideRune:
		return 1
	}
	encoded, err := simplifiedchinese.GBK.NewEncoder().String(string(r))
	if err == nil {
		return len(encoded)
	}
	return fallbackWidth(r)
}

// fallbackWidth covers wide characters GBK does not know (Hangul, most kana
// extensions, newer ideographs).
func fallbackWidth(r rune) int {
	if unicode.In(r, unicode.Han, unicode.Hangul, unicode.Hiragana, unicode.Katakana) {
		return 2
	}
	if r >= 0xFF01 && r <= 0xFF60 {
		return 2
	}
	return 1
}
