// Package tui is the interactive surface: a bubbletea app over the
// store, with list views for projects and documents, modal forms, and
// a tabbed annotation editor.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"annota-cli/internal/store"
)

// Run blocks until the user quits.
func Run(dir string, s store.Store, db *store.DB) error {
	p := tea.NewProgram(newAppModel(dir, s, db), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
