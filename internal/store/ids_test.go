package store

import (
	"strings"
	"testing"

	"annota-cli/internal/model"
)

func TestNewRandomID_PrefixAndLength(t *testing.T) {
	id, err := newRandomID("doc")
	if err != nil {
		t.Fatalf("newRandomID: %v", err)
	}
	if !strings.HasPrefix(id, "doc-") {
		t.Fatalf("expected doc prefix, got %q", id)
	}
	suffix := strings.TrimPrefix(id, "doc-")
	if got, want := len(suffix), 8; got != want {
		t.Fatalf("expected suffix len %d, got %d (%q)", want, got, suffix)
	}
	if suffix != strings.ToLower(suffix) {
		t.Fatalf("expected lowercase suffix, got %q", suffix)
	}
}

func TestNextID_AvoidsBothCollections(t *testing.T) {
	s := New(t.TempDir(), nil)
	db := &DB{
		Projects:  []model.Project{{ID: "proj-aaaaaaaa"}},
		Documents: []model.Document{{ID: "doc-bbbbbbbb"}},
	}

	seen := map[string]bool{"proj-aaaaaaaa": true, "doc-bbbbbbbb": true}
	for i := 0; i < 100; i++ {
		id := s.NextID(db, "doc")
		if seen[id] {
			t.Fatalf("NextID returned duplicate %q", id)
		}
		seen[id] = true
		db.Documents = append(db.Documents, model.Document{ID: id})
	}
}
