package tui

import (
	"strings"
	"testing"
)

func TestNormalizePane_PadsAndTruncates(t *testing.T) {
	out := normalizePane("short\nthis line is definitely too long", 10, 4)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if lines[0] != "short     " {
		t.Fatalf("padding wrong: %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "…") {
		t.Fatalf("long line not truncated with ellipsis: %q", lines[1])
	}
	if lines[2] != strings.Repeat(" ", 10) || lines[3] != strings.Repeat(" ", 10) {
		t.Fatalf("missing lines not padded: %q %q", lines[2], lines[3])
	}
}

func TestNormalizePane_DropsExtraLines(t *testing.T) {
	out := normalizePane("a\nb\nc\nd", 1, 2)
	if got := len(strings.Split(out, "\n")); got != 2 {
		t.Fatalf("expected 2 lines, got %d", got)
	}
}

func TestNormalizePane_WideRunesCountAsColumns(t *testing.T) {
	// Each hangul syllable is two columns wide.
	out := normalizePane("한국어", 4, 1)
	lines := strings.Split(out, "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if !strings.HasSuffix(lines[0], "…") {
		t.Fatalf("wide line not truncated: %q", lines[0])
	}
}
