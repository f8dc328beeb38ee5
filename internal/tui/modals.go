package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func modalBoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Background(colorSurfaceBg).
		Foreground(colorSurfaceFg).
		Padding(1, 2)
}

func inputBoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().Background(colorInputBg)
}

func (m appModel) renderModal(bodyHeight int) string {
	var box string
	switch m.modal {
	case modalNewProject:
		box = m.renderFormBox("New project", true)
	case modalProjectDetail:
		box = m.renderFormBox("Project "+m.modalForID, true)
	case modalNewDocument:
		box = m.renderFormBox("New document in "+m.projectNameLabel(), true)
	case modalDocumentDetail:
		box = m.renderFormBox("Document "+m.modalForID, true)
	case modalCopyDocument:
		box = m.renderFormBox("Copy document", false)
	case modalConfirmDeleteProject:
		box = m.renderConfirmBox("Delete project " + m.modalForID + "?\nIts documents are kept and left pointing at the old id.")
	case modalConfirmDeleteDocument:
		box = m.renderConfirmBox("Delete document " + m.modalForID + "?")
	case modalImport:
		box = m.renderImportBox()
	case modalPickLanguage:
		box = m.renderLanguageBox()
	}
	return lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, box)
}

// renderFormBox is the shared name/description form. Detail modals also
// show the read-only stamps of the record being edited.
func (m appModel) renderFormBox(title string, withDescription bool) string {
	var b strings.Builder
	b.WriteString(styleHeading().Render(title))
	b.WriteString("\n\n")

	b.WriteString(m.renderFieldLabel("Name", m.formFocus == formFocusName))
	b.WriteString("\n")
	b.WriteString(inputBoxStyle().Render(m.nameInput.View()))

	if withDescription {
		b.WriteString("\n\n")
		b.WriteString(m.renderFieldLabel("Description", m.formFocus == formFocusDescription))
		b.WriteString("\n")
		b.WriteString(m.descArea.View())
	}

	if stamps := m.modalStamps(); stamps != "" {
		b.WriteString("\n\n")
		b.WriteString(styleMuted().Render(stamps))
	}

	return modalBoxStyle().Render(b.String())
}

// modalStamps returns the created/updated line for detail modals.
func (m appModel) modalStamps() string {
	var created, updated string
	switch m.modal {
	case modalProjectDetail:
		p, ok := m.db.FindProject(m.modalForID)
		if !ok {
			return ""
		}
		created, updated = p.CreatedAt, p.UpdatedAt
	case modalDocumentDetail:
		d, ok := m.db.FindDocument(m.modalForID)
		if !ok {
			return ""
		}
		created, updated = d.CreatedAt, d.UpdatedAt
	default:
		return ""
	}

	out := "created " + created
	if updated != "" {
		out += "  ·  updated " + updated
	}
	return out
}

func (m appModel) renderFieldLabel(label string, focused bool) string {
	marker := "  "
	if focused {
		marker = glyphSeparator() + " "
	}
	return styleMuted().Render(marker + label)
}

func (m appModel) renderConfirmBox(question string) string {
	confirm := m.renderButton("Delete", m.confirmFocus == confirmFocusConfirm)
	cancel := m.renderButton("Cancel", m.confirmFocus == confirmFocusCancel)

	var b strings.Builder
	b.WriteString(question)
	b.WriteString("\n\n")
	b.WriteString(confirm + "  " + cancel)
	return modalBoxStyle().Render(b.String())
}

func (m appModel) renderButton(label string, focused bool) string {
	st := lipgloss.NewStyle().Padding(0, 2).Background(colorControlBg)
	if focused {
		st = st.Background(colorAccent).Foreground(colorAccentFg).Bold(true)
	}
	return st.Render(label)
}

func (m appModel) renderImportBox() string {
	var b strings.Builder
	b.WriteString(styleHeading().Render("Import files into " + m.projectNameLabel()))
	b.WriteString("\n\n")
	b.WriteString(styleMuted().Render("Paths (quote names with spaces)"))
	b.WriteString("\n")
	b.WriteString(inputBoxStyle().Render(m.pathsInput.View()))
	b.WriteString("\n\n")
	b.WriteString(styleMuted().Render("Unreadable or undecodable files import with empty content."))
	return modalBoxStyle().Render(b.String())
}

func (m appModel) renderLanguageBox() string {
	var b strings.Builder
	b.WriteString(styleHeading().Render("Language"))
	b.WriteString("\n\n")
	for i, l := range languages {
		line := "  " + l
		if i == m.langIndex {
			line = glyphSeparator() + " " + l
			line = lipgloss.NewStyle().Background(colorSelectedBg).Foreground(colorSelectedFg).Render(line)
		}
		b.WriteString(line)
		if i < len(languages)-1 {
			b.WriteString("\n")
		}
	}
	return modalBoxStyle().Render(b.String())
}

func (m appModel) modalHelp() string {
	switch m.modal {
	case modalConfirmDeleteProject, modalConfirmDeleteDocument:
		return "y/enter confirm · n/esc cancel · tab switch"
	case modalImport:
		return "enter import · esc cancel"
	case modalPickLanguage:
		return "enter select · esc cancel"
	case modalCopyDocument:
		return "enter copy · esc cancel"
	default:
		return "enter/ctrl+s save · tab next field · esc cancel"
	}
}
