package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"annota-cli/internal/model"
	"annota-cli/internal/session"
)

const (
	editorSidePaneWidth = 28
	editorInfoPaneWidth = 32
)

func (m appModel) renderEditor(doc model.Document) string {
	sep := " " + glyphSeparator() + " "
	project := m.projectNameLabel()
	if p, ok := m.db.FindProject(doc.ProjectID); ok {
		project = p.Name
	}

	crumb := "Projects" + sep + project + sep + doc.Name
	header := " " + styleHeading().Render("Annota") + "  " + styleMuted().Render(crumb) +
		"\n" + m.renderTabBar() +
		"\n" + styleMuted().Render(strings.Repeat("─", m.width))

	footer := styleMuted().Render(strings.Repeat("─", m.width)) + "\n" +
		styleMuted().Render(" ctrl+s save · esc discard · ctrl+t next tab · tab focus content/author")
	if m.minibuffer != "" {
		footer += "  " + lipgloss.NewStyle().Foreground(colorAccent).Render(m.minibuffer)
	}

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	switch m.editor.ActiveTab() {
	case session.TabGraph:
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center,
			styleMuted().Render("Graph view is not available yet."))
	case session.TabExport:
		body = m.renderExportTab(doc, bodyHeight)
	default:
		body = m.renderAnnotationTab(doc, bodyHeight)
	}
	body = normalizePane(body, m.width, bodyHeight)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m appModel) renderTabBar() string {
	active := m.editor.ActiveTab()
	parts := make([]string, 0, len(session.Tabs()))
	for _, t := range session.Tabs() {
		st := styleMuted().Padding(0, 1)
		if t == active {
			st = lipgloss.NewStyle().Padding(0, 1).Background(colorAccent).Foreground(colorAccentFg).Bold(true)
		}
		parts = append(parts, st.Render(t.Label()))
	}
	return " " + strings.Join(parts, " ")
}

// renderAnnotationTab is the three-pane layout shared by the structure,
// entity, and relation tabs: side pane, draft content, info pane.
func (m appModel) renderAnnotationTab(doc model.Document, height int) string {
	centerWidth := m.width - editorSidePaneWidth - editorInfoPaneWidth - 2
	if centerWidth < 20 {
		// Narrow terminal: drop the side panes.
		return normalizePane(m.contentArea.View(), m.width, height)
	}

	side := normalizePane(m.renderSidePane(), editorSidePaneWidth, height)
	center := normalizePane(m.contentArea.View(), centerWidth, height)
	info := normalizePane(m.renderInfoPane(doc), editorInfoPaneWidth, height)

	divider := normalizePane(strings.Repeat(styleMuted().Render("│")+"\n", height), 1, height)
	return lipgloss.JoinHorizontal(lipgloss.Top, side, divider, center, divider, info)
}

func (m appModel) renderSidePane() string {
	var b strings.Builder
	switch m.editor.ActiveTab() {
	case session.TabEntity:
		b.WriteString(styleHeading().Render(" Entities"))
		b.WriteString("\n\n")
		b.WriteString(styleMuted().Render(" Entity tagging is not\n available yet."))
	case session.TabRelation:
		b.WriteString(styleHeading().Render(" Relations"))
		b.WriteString("\n\n")
		b.WriteString(styleMuted().Render(" Relation tagging is not\n available yet."))
	default:
		b.WriteString(styleHeading().Render(" Structure"))
		b.WriteString("\n\n")
		headings := markdownHeadings(m.editor.Content())
		if len(headings) == 0 {
			b.WriteString(styleMuted().Render(" (no headings)"))
		} else {
			for _, h := range headings {
				b.WriteString(" " + glyphBullet() + " " + h + "\n")
			}
		}
	}
	return b.String()
}

func (m appModel) renderInfoPane(doc model.Document) string {
	var b strings.Builder
	b.WriteString(styleHeading().Render(" Document"))
	b.WriteString("\n\n")
	b.WriteString(styleMuted().Render(" " + doc.ID))
	b.WriteString("\n")
	b.WriteString(styleMuted().Render(" created " + doc.CreatedAt))
	if doc.UpdatedAt != "" {
		b.WriteString("\n")
		b.WriteString(styleMuted().Render(" updated " + doc.UpdatedAt))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderFieldLabel("Author", m.editorFocus == editorFocusAuthor))
	b.WriteString("\n ")
	b.WriteString(inputBoxStyle().Render(m.authorInput.View()))
	if d := strings.TrimSpace(doc.Description); d != "" {
		b.WriteString("\n\n")
		b.WriteString(styleMuted().Render(" " + d))
	}
	b.WriteString("\n\n")
	b.WriteString(styleMuted().Render(fmt.Sprintf(" %d chars", len(m.editor.Content()))))
	return b.String()
}

func (m appModel) renderExportTab(doc model.Document, height int) string {
	width := m.width - 4
	rendered := renderMarkdown(m.editor.Content(), width)
	if rendered == "" {
		rendered = styleMuted().Render("Nothing to export; the document is empty.")
	}
	title := styleHeading().Render(" " + doc.Name + " (markdown preview)")
	return title + "\n\n" + rendered
}

// markdownHeadings pulls out the "# " heading lines of the draft so the
// structure pane has something real to show.
func markdownHeadings(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			out = append(out, strings.TrimSpace(strings.TrimLeft(trimmed, "#")))
		}
		if len(out) >= 20 {
			break
		}
	}
	return out
}
