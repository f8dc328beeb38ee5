package tui

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"annota-cli/internal/export"
	"annota-cli/internal/importer"
	"annota-cli/internal/model"
	"annota-cli/internal/session"
	"annota-cli/internal/store"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case flashDoneMsg:
		if msg.seq == m.flashSeq {
			m.minibuffer = ""
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.editor.IsOpen() {
			if _, ok := m.db.FindDocument(m.editor.DocID()); ok {
				return m.updateEditor(msg)
			}
			// Deleted out from under the session: the route view is live
			// again, fall through to normal handling.
		}
		if m.modal != modalNone {
			return m.updateModal(msg)
		}
		switch m.view {
		case viewDocuments:
			return m.updateDocumentsView(msg)
		default:
			return m.updateProjectsView(msg)
		}
	}

	return m, nil
}

func (m appModel) updateProjectsView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the list filter prompt is active every key belongs to it.
	if m.projectsList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.projectsList, cmd = m.projectsList.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "enter":
		p, ok := m.selectedProject()
		if !ok {
			return m, nil
		}
		m.selectedProjectID = p.ID
		m.selectedProjectName = p.Name
		m.refreshDocuments()
		m.documentsList.ResetFilter()
		m.documentsList.Select(0)
		m.view = viewDocuments
		return m, nil

	case "n":
		m.openFormModal(modalNewProject, "", "", "")
		return m, nil

	case "i":
		p, ok := m.selectedProject()
		if !ok {
			return m, nil
		}
		m.openFormModal(modalProjectDetail, p.ID, p.Name, p.Description)
		return m, nil

	case "d":
		p, ok := m.selectedProject()
		if !ok {
			return m, nil
		}
		m.modal = modalConfirmDeleteProject
		m.modalForID = p.ID
		m.confirmFocus = confirmFocusCancel
		return m, nil

	case "L":
		m.modal = modalPickLanguage
		m.langIndex = 0
		for i, l := range languages {
			if l == m.language {
				m.langIndex = i
			}
		}
		return m, nil

	case "r":
		m.db = m.store.Load()
		m.refreshProjects()
		return m, m.setFlash("Reloaded")
	}

	var cmd tea.Cmd
	m.projectsList, cmd = m.projectsList.Update(msg)
	return m, cmd
}

func (m appModel) updateDocumentsView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.documentsList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.documentsList, cmd = m.documentsList.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc":
		if m.documentsList.FilterState() != list.Unfiltered {
			break
		}
		prev := m.selectedProjectID
		m.selectedProjectID = ""
		m.selectedProjectName = ""
		m.view = viewProjects
		m.refreshProjects()
		selectListItemByID(&m.projectsList, prev)
		return m, nil

	case "enter":
		d, ok := m.selectedDocument()
		if !ok {
			return m, nil
		}
		m.openEditorFor(*d)
		return m, nil

	case "n":
		m.openFormModal(modalNewDocument, "", "", "")
		return m, nil

	case "i":
		d, ok := m.selectedDocument()
		if !ok {
			return m, nil
		}
		m.openFormModal(modalDocumentDetail, d.ID, d.Name, d.Description)
		return m, nil

	case "c":
		d, ok := m.selectedDocument()
		if !ok {
			return m, nil
		}
		m.openFormModal(modalCopyDocument, d.ID, d.Name+" - copy", "")
		return m, nil

	case "d":
		d, ok := m.selectedDocument()
		if !ok {
			return m, nil
		}
		m.modal = modalConfirmDeleteDocument
		m.modalForID = d.ID
		m.confirmFocus = confirmFocusCancel
		return m, nil

	case "m":
		m.modal = modalImport
		m.pathsInput.SetValue("")
		m.pathsInput.Focus()
		return m, nil

	case "x":
		return m.exportSelectedProject()
	}

	var cmd tea.Cmd
	m.documentsList, cmd = m.documentsList.Update(msg)
	return m, cmd
}

func (m appModel) exportSelectedProject() (tea.Model, tea.Cmd) {
	p, ok := m.db.FindProject(m.selectedProjectID)
	if !ok {
		return m, m.setFlash("Project no longer exists")
	}
	path := filepath.Join(m.dir, p.ID+".sqlite")
	docs := m.db.DocumentsForProject(p.ID)
	if err := export.WriteProject(context.Background(), path, *p, docs); err != nil {
		return m, m.setFlash("Export failed: " + err.Error())
	}
	return m, m.setFlash("Exported " + docCountLabel(len(docs)) + " to " + path)
}

// openFormModal seeds the shared name/description form. forID is empty
// for creation modals.
func (m *appModel) openFormModal(kind modalKind, forID, name, description string) {
	m.modal = kind
	m.modalForID = forID
	m.formFocus = formFocusName
	m.nameInput.SetValue(name)
	m.nameInput.CursorEnd()
	m.nameInput.Focus()
	m.descArea.SetValue(description)
	m.descArea.Blur()
}

func (m *appModel) openEditorFor(doc model.Document) {
	m.editor.Open(doc)
	m.contentArea.SetValue(doc.Content)
	m.authorInput.SetValue(doc.Author)
	m.editorFocus = editorFocusContent
	m.contentArea.Focus()
	m.authorInput.Blur()
}

func (m appModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalConfirmDeleteProject, modalConfirmDeleteDocument:
		return m.updateConfirmModal(msg)
	case modalImport:
		return m.updateImportModal(msg)
	case modalPickLanguage:
		return m.updateLanguageModal(msg)
	default:
		return m.updateFormModal(msg)
	}
}

func (m appModel) updateFormModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil

	case "tab", "shift+tab":
		// The copy form has a single field.
		if m.modal == modalCopyDocument {
			return m, nil
		}
		if m.formFocus == formFocusName {
			m.formFocus = formFocusDescription
			m.nameInput.Blur()
			m.descArea.Focus()
		} else {
			m.formFocus = formFocusName
			m.descArea.Blur()
			m.nameInput.Focus()
		}
		return m, nil

	case "ctrl+s":
		return m.submitFormModal()

	case "enter":
		if m.formFocus == formFocusName {
			return m.submitFormModal()
		}
	}

	var cmd tea.Cmd
	if m.formFocus == formFocusDescription {
		m.descArea, cmd = m.descArea.Update(msg)
	} else {
		m.nameInput, cmd = m.nameInput.Update(msg)
	}
	return m, cmd
}

func (m appModel) submitFormModal() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.nameInput.Value())
	description := m.descArea.Value()
	if name == "" {
		return m, m.setFlash("Name is required")
	}

	var flash string
	switch m.modal {
	case modalNewProject:
		p := m.store.AddProject(m.db, name, description)
		m.refreshProjects()
		selectListItemByID(&m.projectsList, p.ID)
		flash = "Created " + p.ID

	case modalProjectDetail:
		m.store.UpdateProject(m.db, m.modalForID, store.ProjectPatch{Name: &name, Description: &description})
		if m.selectedProjectID == m.modalForID {
			m.selectedProjectName = name
		}
		m.refreshProjects()
		flash = "Saved " + m.modalForID

	case modalNewDocument:
		d := m.store.AddDocument(m.db, m.selectedProjectID, name, description, "", "")
		m.refreshDocuments()
		selectListItemByID(&m.documentsList, d.ID)
		flash = "Created " + d.ID

	case modalDocumentDetail:
		m.store.UpdateDocument(m.db, m.modalForID, store.DocumentPatch{Name: &name, Description: &description})
		m.refreshDocuments()
		flash = "Saved " + m.modalForID

	case modalCopyDocument:
		src, ok := m.db.FindDocument(m.modalForID)
		if !ok {
			m.closeModal()
			return m, m.setFlash("Document no longer exists")
		}
		d := m.store.AddDocument(m.db, src.ProjectID, name, src.Description, src.Content, src.Author)
		m.refreshDocuments()
		selectListItemByID(&m.documentsList, d.ID)
		flash = "Copied to " + d.ID
	}

	m.closeModal()
	return m, m.setFlash(flash)
}

func (m appModel) updateConfirmModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "n":
		m.closeModal()
		return m, nil

	case "left", "right", "tab", "shift+tab":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil

	case "y":
		return m.confirmDelete()

	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			return m.confirmDelete()
		}
		m.closeModal()
		return m, nil
	}
	return m, nil
}

func (m appModel) confirmDelete() (tea.Model, tea.Cmd) {
	id := m.modalForID
	var flash string
	switch m.modal {
	case modalConfirmDeleteProject:
		m.store.DeleteProject(m.db, id)
		m.refreshProjects()
		flash = "Deleted " + id
	case modalConfirmDeleteDocument:
		m.store.DeleteDocument(m.db, id)
		m.refreshDocuments()
		flash = "Deleted " + id
	}
	m.closeModal()
	return m, m.setFlash(flash)
}

func (m appModel) updateImportModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil

	case "enter":
		paths := splitShellWords(m.pathsInput.Value())
		m.closeModal()
		if len(paths) == 0 {
			return m, nil
		}
		imp := importer.New(m.store, m.store.Log())
		files := imp.ReadFiles(paths)
		ids := imp.Import(context.Background(), m.db, files, m.selectedProjectID)
		m.refreshDocuments()
		if len(ids) > 0 {
			selectListItemByID(&m.documentsList, ids[len(ids)-1])
		}
		return m, m.setFlash("Imported " + docCountLabel(len(ids)))
	}

	var cmd tea.Cmd
	m.pathsInput, cmd = m.pathsInput.Update(msg)
	return m, cmd
}

func (m appModel) updateLanguageModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil
	case "up", "ctrl+p", "k":
		if m.langIndex > 0 {
			m.langIndex--
		}
		return m, nil
	case "down", "ctrl+n", "j":
		if m.langIndex < len(languages)-1 {
			m.langIndex++
		}
		return m, nil
	case "enter":
		m.language = languages[m.langIndex]
		m.closeModal()
		return m, nil
	}
	return m, nil
}

func (m appModel) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editor.Discard()
		m.leaveEditor()
		return m, nil

	case "ctrl+s":
		saved := m.editor.Save(m.store, m.db)
		m.leaveEditor()
		if saved {
			return m, m.setFlash("Saved")
		}
		return m, m.setFlash("Document no longer exists")

	case "ctrl+t":
		m.editor.NextTab()
		return m, nil

	case "tab":
		if m.editorFocus == editorFocusContent {
			m.editorFocus = editorFocusAuthor
			m.contentArea.Blur()
			m.authorInput.Focus()
		} else {
			m.editorFocus = editorFocusContent
			m.authorInput.Blur()
			m.contentArea.Focus()
		}
		return m, nil
	}

	// Draft edits only land on tabs that show the inputs.
	switch m.editor.ActiveTab() {
	case session.TabStructure, session.TabEntity, session.TabRelation:
	default:
		return m, nil
	}

	var cmd tea.Cmd
	if m.editorFocus == editorFocusAuthor {
		m.authorInput, cmd = m.authorInput.Update(msg)
		m.editor.SetAuthor(m.authorInput.Value())
	} else {
		m.contentArea, cmd = m.contentArea.Update(msg)
		m.editor.SetContent(m.contentArea.Value())
	}
	return m, cmd
}

// leaveEditor returns to the document list of the project that was
// being edited, refreshing it so saved changes show up.
func (m *appModel) leaveEditor() {
	m.view = viewDocuments
	m.refreshDocuments()
	m.contentArea.Blur()
	m.authorInput.Blur()
}
