// Package session holds the editor view-state: which document is open,
// its in-progress draft, and the active annotation tab. The state is
// deliberately UI-independent so the open/edit/save/discard machine can
// be exercised without a terminal.
package session

import (
	"annota-cli/internal/model"
	"annota-cli/internal/store"
)

// Tab is one of the editor's annotation modes.
type Tab string

const (
	TabStructure Tab = "structure"
	TabEntity    Tab = "entity"
	TabRelation  Tab = "relation"
	TabGraph     Tab = "graph"
	TabExport    Tab = "export"
)

// Tabs returns the closed set of tabs in display order.
func Tabs() []Tab {
	return []Tab{TabStructure, TabEntity, TabRelation, TabGraph, TabExport}
}

func (t Tab) Label() string {
	switch t {
	case TabStructure:
		return "Structure"
	case TabEntity:
		return "Entities"
	case TabRelation:
		return "Relations"
	case TabGraph:
		return "Graph"
	case TabExport:
		return "Export"
	default:
		return string(t)
	}
}

// Editor is the global edit session. The zero value is Closed. At most
// one document is open at a time: Open on an already-open editor
// replaces the state wholesale.
//
// Draft content/author are copies of the stored fields; nothing touches
// the store until Save.
type Editor struct {
	docID        string
	draftContent string
	draftAuthor  string
	activeTab    Tab
}

func (e *Editor) IsOpen() bool { return e.docID != "" }

func (e *Editor) DocID() string   { return e.docID }
func (e *Editor) Content() string { return e.draftContent }
func (e *Editor) Author() string  { return e.draftAuthor }

func (e *Editor) ActiveTab() Tab {
	if e.activeTab == "" {
		return TabStructure
	}
	return e.activeTab
}

// Open seeds the draft from the stored document and resets the active
// tab to structure annotation.
func (e *Editor) Open(doc model.Document) {
	e.docID = doc.ID
	e.draftContent = doc.Content
	e.draftAuthor = doc.Author
	e.activeTab = TabStructure
}

func (e *Editor) SetContent(content string) {
	if !e.IsOpen() {
		return
	}
	e.draftContent = content
}

func (e *Editor) SetAuthor(author string) {
	if !e.IsOpen() {
		return
	}
	e.draftAuthor = author
}

func (e *Editor) SetTab(tab Tab) {
	if !e.IsOpen() {
		return
	}
	e.activeTab = tab
}

// NextTab advances the active tab, wrapping around the closed set.
func (e *Editor) NextTab() {
	tabs := Tabs()
	cur := e.ActiveTab()
	for i, t := range tabs {
		if t == cur {
			e.SetTab(tabs[(i+1)%len(tabs)])
			return
		}
	}
	e.SetTab(TabStructure)
}

// Save copies the draft back into the store via the document update
// operation, then closes the session. The update is a no-op when the
// document has been deleted out from under the editor; the session
// still closes.
func (e *Editor) Save(s store.Store, db *store.DB) bool {
	if !e.IsOpen() {
		return false
	}
	content, author := e.draftContent, e.draftAuthor
	ok := s.UpdateDocument(db, e.docID, store.DocumentPatch{Content: &content, Author: &author})
	e.close()
	return ok
}

// Discard closes the session without persisting draft edits.
func (e *Editor) Discard() {
	e.close()
}

func (e *Editor) close() {
	*e = Editor{}
}
