package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"annota-cli/internal/model"
	"annota-cli/internal/session"
	"annota-cli/internal/store"
)

const flashDuration = 3 * time.Second

type appModel struct {
	dir   string
	store store.Store
	db    *store.DB

	// Global edit session. When open (and the document still exists) it
	// pre-empts whatever view is current.
	editor session.Editor

	width  int
	height int

	view          view
	projectsList  list.Model
	documentsList list.Model

	// Transient navigation context for the documents view. The name is a
	// display hint only; when it is empty the header regenerates a
	// "Project <id>" label.
	selectedProjectID   string
	selectedProjectName string

	language string

	modal        modalKind
	modalForID   string
	formFocus    formFocus
	confirmFocus confirmModalFocus
	langIndex    int

	nameInput  textinput.Model
	descArea   textarea.Model
	pathsInput textinput.Model

	contentArea textarea.Model
	authorInput textinput.Model
	editorFocus editorFocus

	minibuffer string
	flashSeq   int
}

func newAppModel(dir string, s store.Store, db *store.DB) appModel {
	name := textinput.New()
	name.CharLimit = 200
	name.Prompt = ""

	desc := textarea.New()
	desc.CharLimit = 0
	desc.ShowLineNumbers = false
	desc.SetHeight(4)

	paths := textinput.New()
	paths.CharLimit = 0
	paths.Prompt = ""
	paths.Placeholder = `notes/a.txt "with spaces.txt"`

	content := textarea.New()
	content.CharLimit = 0
	content.ShowLineNumbers = false

	author := textinput.New()
	author.CharLimit = 200
	author.Prompt = ""
	author.Placeholder = "(unknown)"

	m := appModel{
		dir:           dir,
		store:         s,
		db:            db,
		view:          viewProjects,
		projectsList:  newList("Projects", nil),
		documentsList: newList("Documents", nil),
		language:      languages[0],
		confirmFocus:  confirmFocusCancel,
		nameInput:     name,
		descArea:      desc,
		pathsInput:    paths,
		contentArea:   content,
		authorInput:   author,
	}
	m.refreshProjects()
	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m *appModel) refreshProjects() {
	items := make([]list.Item, 0, len(m.db.Projects))
	for _, p := range m.db.Projects {
		items = append(items, projectItem{project: p, docs: len(m.db.DocumentsForProject(p.ID))})
	}
	m.projectsList.SetItems(items)
}

func (m *appModel) refreshDocuments() {
	docs := m.db.DocumentsForProject(m.selectedProjectID)
	items := make([]list.Item, 0, len(docs))
	for _, d := range docs {
		items = append(items, documentItem{doc: d})
	}
	m.documentsList.SetItems(items)
}

// projectNameLabel is the breadcrumb label for the selected project.
// The stored name is transient context passed along on navigation; a
// missing name falls back to a label derived from the id.
func (m appModel) projectNameLabel() string {
	if strings.TrimSpace(m.selectedProjectName) != "" {
		return m.selectedProjectName
	}
	return "Project " + m.selectedProjectID
}

func (m *appModel) setFlash(msg string) tea.Cmd {
	m.minibuffer = msg
	m.flashSeq++
	seq := m.flashSeq
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashDoneMsg{seq: seq}
	})
}

func (m appModel) selectedProject() (*model.Project, bool) {
	it, ok := m.projectsList.SelectedItem().(projectItem)
	if !ok {
		return nil, false
	}
	return m.db.FindProject(it.project.ID)
}

func (m appModel) selectedDocument() (*model.Document, bool) {
	it, ok := m.documentsList.SelectedItem().(documentItem)
	if !ok {
		return nil, false
	}
	return m.db.FindDocument(it.doc.ID)
}

func (m appModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	// The edit session overrides routing, but only while its document is
	// still in the store. A deleted document renders the route view; the
	// session itself is left alone.
	if m.editor.IsOpen() {
		if doc, ok := m.db.FindDocument(m.editor.DocID()); ok {
			return m.renderEditor(*doc)
		}
	}

	header := m.renderHeader()
	footer := m.renderFooter()
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	if m.modal != modalNone {
		body = m.renderModal(bodyHeight)
	} else {
		switch m.view {
		case viewDocuments:
			body = m.documentsList.View()
		default:
			body = m.projectsList.View()
		}
	}
	body = normalizePane(body, m.width, bodyHeight)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m appModel) renderHeader() string {
	sep := " " + glyphSeparator() + " "
	crumb := "Projects"
	if m.view == viewDocuments {
		crumb += sep + m.projectNameLabel()
	}

	left := styleHeading().Render("Annota") + "  " + styleMuted().Render(crumb)
	right := styleMuted().Render(glyphBullet() + " " + m.language)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	line := " " + left + strings.Repeat(" ", gap) + right
	return line + "\n" + styleMuted().Render(strings.Repeat("─", m.width))
}

func (m appModel) renderFooter() string {
	var help string
	switch {
	case m.modal != modalNone:
		help = m.modalHelp()
	case m.view == viewDocuments:
		help = "enter edit · n new · i detail · c copy · m import · x export · d delete · esc back · q quit"
	default:
		help = "enter open · n new · i detail · d delete · L language · r reload · q quit"
	}

	line := styleMuted().Render(" " + help)
	if m.minibuffer != "" {
		line = lipgloss.NewStyle().Foreground(colorAccent).Render(" "+m.minibuffer) + "  " + line
	}
	return styleMuted().Render(strings.Repeat("─", m.width)) + "\n" + line
}

func (m *appModel) resize() {
	listHeight := m.height - 4
	if listHeight < 1 {
		listHeight = 1
	}
	m.projectsList.SetSize(m.width-2, listHeight)
	m.documentsList.SetSize(m.width-2, listHeight)

	m.nameInput.Width = min(60, m.width-10)
	m.pathsInput.Width = min(70, m.width-10)
	m.descArea.SetWidth(min(60, m.width-10))
	m.authorInput.Width = editorInfoPaneWidth - 6

	centerWidth := m.width - editorSidePaneWidth - editorInfoPaneWidth - 2
	if centerWidth < 20 {
		centerWidth = m.width
	}
	m.contentArea.SetWidth(centerWidth)
	editorHeight := m.height - 6
	if editorHeight < 3 {
		editorHeight = 3
	}
	m.contentArea.SetHeight(editorHeight)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func docCountLabel(n int) string {
	if n == 1 {
		return "1 document"
	}
	return fmt.Sprintf("%d documents", n)
}
