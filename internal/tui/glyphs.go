package tui

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// Terminal apps can't change the user's font; instead we pick between
// Unicode and ASCII glyph sets for UI affordances. ASCII kicks in on
// terminals without color/unicode support or via ANNOTA_TUI_GLYPHS.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

func glyphs() glyphSet {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("ANNOTA_TUI_GLYPHS"))) {
	case "ascii":
		return glyphSetASCII
	case "unicode", "utf8":
		return glyphSetUnicode
	}
	if termenv.EnvColorProfile() == termenv.Ascii {
		return glyphSetASCII
	}
	return glyphSetUnicode
}

func glyphBullet() string {
	if glyphs() == glyphSetASCII {
		return "*"
	}
	return "●"
}

func glyphSeparator() string {
	if glyphs() == glyphSetASCII {
		return ">"
	}
	return "›"
}
