package tui

type view int

const (
	viewProjects view = iota
	viewDocuments
)

type modalKind int

const (
	modalNone modalKind = iota
	modalNewProject
	modalProjectDetail
	modalConfirmDeleteProject
	modalNewDocument
	modalDocumentDetail
	modalCopyDocument
	modalConfirmDeleteDocument
	modalImport
	modalPickLanguage
)

type formFocus int

const (
	formFocusName formFocus = iota
	formFocusDescription
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

type editorFocus int

const (
	editorFocusContent editorFocus = iota
	editorFocusAuthor
)

type flashDoneMsg struct{ seq int }

// languages is the closed label set offered by the chrome's language
// selector. Selecting one changes the stored label only; there is no
// translation layer behind it.
var languages = []string{"English", "한국인", "简体中文", "繁体中文"}

func (m *appModel) closeModal() {
	m.modal = modalNone
	m.modalForID = ""
	m.formFocus = formFocusName
	m.confirmFocus = confirmFocusCancel
	m.langIndex = 0

	m.nameInput.Placeholder = "Name"
	m.nameInput.SetValue("")
	m.nameInput.Blur()

	m.descArea.SetValue("")
	m.descArea.Blur()

	m.pathsInput.SetValue("")
	m.pathsInput.Blur()
}
