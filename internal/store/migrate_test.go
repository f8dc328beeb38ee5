package store

import (
	"strings"
	"testing"
)

func TestDecodeProjects_NormalizesNumericIDs(t *testing.T) {
	raw := []byte(`[{"id": 42, "name": "legacy", "createdAt": "2025-01-01"}]`)
	projects, err := decodeProjects(raw)
	if err != nil {
		t.Fatalf("decodeProjects: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}
	if projects[0].ID != "42" {
		t.Fatalf("numeric id not normalized: %q", projects[0].ID)
	}
}

func TestDecodeProjects_MissingIDGetsFreshOne(t *testing.T) {
	raw := []byte(`[{"name": "idless"}]`)
	projects, err := decodeProjects(raw)
	if err != nil {
		t.Fatalf("decodeProjects: %v", err)
	}
	if !strings.HasPrefix(projects[0].ID, "proj-") {
		t.Fatalf("expected fresh proj- id, got %q", projects[0].ID)
	}
}

func TestDecodeDocuments_BackfillsProjectIDFromFirstProject(t *testing.T) {
	projects, err := decodeProjects([]byte(`[{"id": "proj-first", "name": "p"}]`))
	if err != nil {
		t.Fatalf("decodeProjects: %v", err)
	}

	raw := []byte(`[
		{"id": "doc-ok", "projectId": "proj-first", "name": "fine"},
		{"id": "doc-legacy", "projectId": 7, "name": "numeric ref"},
		{"id": "doc-orphan", "name": "no ref"}
	]`)
	docs, err := decodeDocuments(raw, projects)
	if err != nil {
		t.Fatalf("decodeDocuments: %v", err)
	}

	if docs[0].ProjectID != "proj-first" {
		t.Fatalf("valid projectId rewritten: %q", docs[0].ProjectID)
	}
	if docs[1].ProjectID != "7" {
		t.Fatalf("numeric projectId should normalize to its string form, got %q", docs[1].ProjectID)
	}
	if docs[2].ProjectID != "proj-first" {
		t.Fatalf("missing projectId not backfilled with first project: %q", docs[2].ProjectID)
	}
}

func TestDecodeDocuments_BackfillWithoutProjectsMintsID(t *testing.T) {
	raw := []byte(`[{"id": "doc-alone", "name": "stray"}]`)
	docs, err := decodeDocuments(raw, nil)
	if err != nil {
		t.Fatalf("decodeDocuments: %v", err)
	}
	if !strings.HasPrefix(docs[0].ProjectID, "proj-") {
		t.Fatalf("expected minted proj- id for orphan, got %q", docs[0].ProjectID)
	}
}

func TestDecodeDocuments_MalformedSlotErrors(t *testing.T) {
	if _, err := decodeDocuments([]byte(`{"not": "an array"}`), nil); err == nil {
		t.Fatalf("expected error for non-array slot")
	}
}
