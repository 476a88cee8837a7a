package textwidth_test

import (
	"testing"

	"github.com/lululau/datepick/internal/textwidth"
)

func TestStringWidthMixedScripts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"ascii", "hello", 5},
		{"chinese", "中文", 4},
		{"mixed", "A中", 3},
		{"multiline", "ab\n中文", 4},
		{"french accents", "février", 7},
		{"box drawing", "╭──╮", 4},
		{"ansi", "\x1b[1;38;2;1;2;3m七月\x1b[0m", 4},
		{"hangul", "한", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := textwidth.StringWidth(tt.in); got != tt.want {
				t.Fatalf("StringWidth(%q)=%d want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	got := textwidth.PadRight("中", 4)
	if textwidth.StringWidth(got) != 4 {
		t.Fatalf("PadRight width=%d want 4", textwidth.StringWidth(got))
	}
	if got == "中" {
		t.Fatalf("PadRight should append spaces")
	}
}

func TestPadLeftAndCenter(t *testing.T) {
	if got := textwidth.PadLeft("7", 3); got != "  7" {
		t.Fatalf("PadLeft=%q", got)
	}
	if got := textwidth.Center("日", 5); got != " 日  " {
		t.Fatalf("Center=%q", got)
	}
	if got := textwidth.Center("toolong", 3); got != "toolong" {
		t.Fatalf("Center should not truncate, got %q", got)
	}
}
