package tui

import "testing"

func TestGlyphs_EnvOverrideForcesASCII(t *testing.T) {
	t.Setenv("ANNOTA_TUI_GLYPHS", "ascii")
	if glyphs() != glyphSetASCII {
		t.Fatalf("env override ignored")
	}
	if glyphBullet() != "*" || glyphSeparator() != ">" {
		t.Fatalf("ascii glyphs wrong: %q %q", glyphBullet(), glyphSeparator())
	}
}

func TestGlyphs_EnvOverrideForcesUnicode(t *testing.T) {
	t.Setenv("ANNOTA_TUI_GLYPHS", "unicode")
	if glyphs() != glyphSetUnicode {
		t.Fatalf("env override ignored")
	}
	if glyphSeparator() != "›" {
		t.Fatalf("unicode separator wrong: %q", glyphSeparator())
	}
}

func TestMarkdownHeadings_ExtractsAndCaps(t *testing.T) {
	content := "# Title\nbody\n## Section\nmore\nnot a # heading"
	got := markdownHeadings(content)
	if len(got) != 2 || got[0] != "Title" || got[1] != "Section" {
		t.Fatalf("unexpected headings: %v", got)
	}
	if got := markdownHeadings(""); got != nil {
		t.Fatalf("empty content produced headings: %v", got)
	}
}
