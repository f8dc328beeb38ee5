package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"annota-cli/internal/model"
)

type projectItem struct {
	project model.Project
	docs    int
}

func (i projectItem) FilterValue() string { return i.project.Name }
func (i projectItem) Title() string {
	name := strings.TrimSpace(i.project.Name)
	if name == "" {
		name = "(unnamed project)"
	}
	return name
}
func (i projectItem) Description() string {
	parts := []string{i.project.ID}
	if d := strings.TrimSpace(i.project.Description); d != "" {
		parts = append(parts, d)
	}
	if i.project.CreatedAt != "" {
		parts = append(parts, "created "+i.project.CreatedAt)
	}
	return strings.Join(parts, "  ")
}

type documentItem struct {
	doc model.Document
}

func (i documentItem) FilterValue() string { return i.doc.Name }
func (i documentItem) Title() string {
	name := strings.TrimSpace(i.doc.Name)
	if name == "" {
		name = "(unnamed document)"
	}
	return name
}
func (i documentItem) Description() string {
	parts := []string{i.doc.ID}
	if d := strings.TrimSpace(i.doc.Description); d != "" {
		parts = append(parts, d)
	}
	if i.doc.CreatedAt != "" {
		parts = append(parts, "created "+i.doc.CreatedAt)
	}
	return strings.Join(parts, "  ")
}

func newList(title string, items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	// We render our own global header + footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	// Bubble list defaults to quitting on ESC; here ESC is "back/cancel".
	l.KeyMap.Quit.SetKeys("q")
	// Emacs-style navigation aliases.
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)
	return l
}

func selectListItemByID(l *list.Model, id string) {
	for i := 0; i < len(l.Items()); i++ {
		switch it := l.Items()[i].(type) {
		case projectItem:
			if it.project.ID == id {
				l.Select(i)
				return
			}
		case documentItem:
			if it.doc.ID == id {
				l.Select(i)
				return
			}
		}
	}
}
