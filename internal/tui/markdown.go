package tui

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

var (
	mdRendererMu sync.Mutex
	// Cache renderers by wrap width. Creating a renderer with
	// WithAutoStyle can trigger terminal queries that block on some
	// terminals, so a fixed style + cache keeps the export tab fast.
	mdRenderers = map[int]*glamour.TermRenderer{}
)

func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	mdRendererMu.Lock()
	r := mdRenderers[width]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(markdownStyle()),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			mdRendererMu.Unlock()
			return md
		}
		mdRenderers[width] = rr
		r = rr
	}
	mdRendererMu.Unlock()

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func markdownStyle() string {
	if hasDarkBackgroundFromEnv() {
		return "dark"
	}
	return "light"
}

// hasDarkBackgroundFromEnv guesses the terminal background without
// querying the terminal (queries can block). COLORFGBG is "fg;bg";
// xterm palette 0-6 are dark colors.
func hasDarkBackgroundFromEnv() bool {
	v := strings.TrimSpace(os.Getenv("COLORFGBG"))
	if v == "" {
		return true
	}
	parts := strings.Split(v, ";")
	bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil {
		return true
	}
	return bg < 7
}
