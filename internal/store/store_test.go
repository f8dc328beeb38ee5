package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"annota-cli/internal/model"
)

func newTestStore(t *testing.T) Store {
	t.Helper()
	return New(t.TempDir(), nil)
}

func TestLoad_SeedsWhenSlotsAbsent(t *testing.T) {
	s := newTestStore(t)
	db := s.Load()

	if got := len(db.Projects); got != 3 {
		t.Fatalf("expected 3 seed projects, got %d", got)
	}
	if got := len(db.Documents); got != 3 {
		t.Fatalf("expected 3 seed documents, got %d", got)
	}
	for _, d := range db.Documents {
		if _, ok := db.FindProject(d.ProjectID); !ok {
			t.Fatalf("seed document %s references unknown project %s", d.ID, d.ProjectID)
		}
	}
}

func TestLoad_SeedsWhenSlotMalformed(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(filepath.Join(s.Dir, projectsFileName), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write slot: %v", err)
	}

	db := s.Load()
	if got := len(db.Projects); got != 3 {
		t.Fatalf("expected seed fallback on malformed slot, got %d projects", got)
	}
}

func TestLoad_RoundTripsMutations(t *testing.T) {
	s := newTestStore(t)
	db := s.Load()

	p := s.AddProject(db, "Research", "primary sources")
	d := s.AddDocument(db, p.ID, "notes.txt", "", "raw text", "kim")

	db2 := s.Load()
	got, ok := db2.FindProject(p.ID)
	if !ok {
		t.Fatalf("project %s missing after reload", p.ID)
	}
	if got.Name != "Research" || got.Description != "primary sources" {
		t.Fatalf("project round-trip mismatch: %+v", got)
	}
	doc, ok := db2.FindDocument(d.ID)
	if !ok {
		t.Fatalf("document %s missing after reload", d.ID)
	}
	if doc.Content != "raw text" || doc.Author != "kim" || doc.ProjectID != p.ID {
		t.Fatalf("document round-trip mismatch: %+v", doc)
	}
}

func TestLoad_PreservesInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	db := &DB{}

	var want []string
	for _, name := range []string{"alpha", "beta", "gamma", "delta"} {
		want = append(want, s.AddProject(db, name, "").ID)
	}

	db2 := s.Load()
	if len(db2.Projects) != len(want) {
		t.Fatalf("expected %d projects, got %d", len(want), len(db2.Projects))
	}
	for i, id := range want {
		if db2.Projects[i].ID != id {
			t.Fatalf("order broken at %d: got %s, want %s", i, db2.Projects[i].ID, id)
		}
	}
}

func TestUpdateProject_TouchesUpdatedAtOnly(t *testing.T) {
	s := newTestStore(t)
	db := &DB{}
	p := s.AddProject(db, "before", "")

	name := "after"
	if !s.UpdateProject(db, p.ID, ProjectPatch{Name: &name}) {
		t.Fatalf("update reported failure")
	}

	got, _ := db.FindProject(p.ID)
	if got.Name != "after" {
		t.Fatalf("name not updated: %q", got.Name)
	}
	if got.ID != p.ID {
		t.Fatalf("id changed on update: %s -> %s", p.ID, got.ID)
	}
	if got.CreatedAt != p.CreatedAt {
		t.Fatalf("createdAt changed on update: %s -> %s", p.CreatedAt, got.CreatedAt)
	}
	if got.UpdatedAt == "" {
		t.Fatalf("updatedAt not stamped")
	}
	if got.Description != "" {
		t.Fatalf("nil patch field overwrote description: %q", got.Description)
	}
}

func TestUpdate_AbsentIDIsNoOp(t *testing.T) {
	s := newTestStore(t)
	db := &DB{}
	s.AddProject(db, "only", "")

	name := "x"
	if s.UpdateProject(db, "proj-missing", ProjectPatch{Name: &name}) {
		t.Fatalf("update of absent project reported success")
	}
	if s.UpdateDocument(db, "doc-missing", DocumentPatch{Name: &name}) {
		t.Fatalf("update of absent document reported success")
	}
	if len(db.Projects) != 1 || db.Projects[0].Name != "only" {
		t.Fatalf("no-op update mutated collection: %+v", db.Projects)
	}
}

func TestDeleteProject_NoCascade(t *testing.T) {
	s := newTestStore(t)
	db := &DB{}
	p := s.AddProject(db, "doomed", "")
	d := s.AddDocument(db, p.ID, "orphan.txt", "", "", "")

	if !s.DeleteProject(db, p.ID) {
		t.Fatalf("delete reported failure")
	}
	if _, ok := db.FindProject(p.ID); ok {
		t.Fatalf("project still present after delete")
	}
	doc, ok := db.FindDocument(d.ID)
	if !ok {
		t.Fatalf("document cascaded away with its project")
	}
	if doc.ProjectID != p.ID {
		t.Fatalf("orphan document was reassigned: %s", doc.ProjectID)
	}

	// Idempotent: a second delete is a quiet no-op.
	if s.DeleteProject(db, p.ID) {
		t.Fatalf("second delete reported success")
	}
}

func TestAppendDocuments_SingleMutation(t *testing.T) {
	s := newTestStore(t)
	db := &DB{}
	p := s.AddProject(db, "bulk", "")

	batch := []model.Document{
		{ID: "doc-b1", ProjectID: p.ID, Name: "one"},
		{ID: "doc-b2", ProjectID: p.ID, Name: "two"},
	}
	s.AppendDocuments(db, batch)

	if got := len(db.Documents); got != 2 {
		t.Fatalf("expected 2 documents, got %d", got)
	}
	db2 := s.Load()
	if got := len(db2.Documents); got != 2 {
		t.Fatalf("batch not persisted: got %d documents", got)
	}
	if db2.Documents[0].ID != "doc-b1" || db2.Documents[1].ID != "doc-b2" {
		t.Fatalf("batch order not preserved: %+v", db2.Documents)
	}
}

func TestAppendDocuments_EmptyBatchDoesNotTouchSlot(t *testing.T) {
	s := newTestStore(t)
	db := &DB{}
	s.AppendDocuments(db, nil)

	if _, err := os.Stat(filepath.Join(s.Dir, documentsFileName)); !os.IsNotExist(err) {
		t.Fatalf("empty batch wrote the documents slot")
	}
}

func TestSave_IsBestEffort(t *testing.T) {
	dir := t.TempDir()
	s := New(filepath.Join(dir, "missing", "nested"), nil)
	db := &DB{}

	// MkdirAll succeeds even here, so force failure by occupying the
	// parent path with a file.
	if err := os.WriteFile(filepath.Join(dir, "missing"), []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	p := s.AddProject(db, "in memory only", "")
	if _, ok := db.FindProject(p.ID); !ok {
		t.Fatalf("failed persist lost the in-memory mutation")
	}
}

func TestDocumentsForProject_FiltersAndOrders(t *testing.T) {
	s := newTestStore(t)
	db := &DB{}
	a := s.AddProject(db, "a", "")
	b := s.AddProject(db, "b", "")

	d1 := s.AddDocument(db, a.ID, "first", "", "", "")
	s.AddDocument(db, b.ID, "other", "", "", "")
	d2 := s.AddDocument(db, a.ID, "second", "", "", "")

	got := db.DocumentsForProject(a.ID)
	if len(got) != 2 || got[0].ID != d1.ID || got[1].ID != d2.ID {
		t.Fatalf("unexpected filtered documents: %+v", got)
	}
}

func TestSaveSlot_WritesIndentedJSON(t *testing.T) {
	s := newTestStore(t)
	db := &DB{}
	s.AddProject(db, "pretty", "")

	raw, err := os.ReadFile(filepath.Join(s.Dir, projectsFileName))
	if err != nil {
		t.Fatalf("read slot: %v", err)
	}
	var arr []map[string]any
	if err := json.Unmarshal(raw, &arr); err != nil {
		t.Fatalf("slot is not a JSON array: %v", err)
	}
	if len(arr) != 1 {
		t.Fatalf("expected 1 element, got %d", len(arr))
	}
	if _, ok := arr[0]["createdAt"]; !ok {
		t.Fatalf("expected camelCase createdAt key, got %v", arr[0])
	}
}
