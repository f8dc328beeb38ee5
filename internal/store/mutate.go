package store

import (
	"go.uber.org/zap"

	"annota-cli/internal/model"
)

// ProjectPatch carries the fields a project update may change. Nil
// fields are left untouched; id and createdAt are never patchable.
type ProjectPatch struct {
	Name        *string
	Description *string
}

// DocumentPatch is the document counterpart of ProjectPatch.
type DocumentPatch struct {
	Name        *string
	Description *string
	Content     *string
	Author      *string
}

// AddProject appends a new project with a fresh id and today's stamp,
// then persists the collection.
func (s Store) AddProject(db *DB, name, description string) model.Project {
	p := model.Project{
		ID:          s.NextID(db, "proj"),
		Name:        name,
		Description: description,
		CreatedAt:   model.Today(),
	}
	db.Projects = append(db.Projects, p)
	s.saveProjects(db)
	return p
}

// UpdateProject merges patch into the matching project and touches
// updatedAt. An absent id is a logged no-op.
func (s Store) UpdateProject(db *DB, id string, patch ProjectPatch) bool {
	p, ok := db.FindProject(id)
	if !ok {
		s.log.Info("update ignored; project not found", zap.String("id", id))
		return false
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	p.UpdatedAt = model.Today()
	s.saveProjects(db)
	return true
}

// DeleteProject removes the project. Documents referencing it are left
// untouched: no cascade, no reassignment. Deleting an absent id is a
// no-op (idempotent-delete semantics).
func (s Store) DeleteProject(db *DB, id string) bool {
	for i := range db.Projects {
		if db.Projects[i].ID == id {
			db.Projects = append(db.Projects[:i], db.Projects[i+1:]...)
			s.saveProjects(db)
			return true
		}
	}
	s.log.Info("delete ignored; project not found", zap.String("id", id))
	return false
}

// AddDocument appends a new document with a fresh id and today's
// stamps, then persists the collection. Content and author default to
// the empty string.
func (s Store) AddDocument(db *DB, projectID, name, description, content, author string) model.Document {
	today := model.Today()
	d := model.Document{
		ID:          s.NextID(db, "doc"),
		ProjectID:   projectID,
		Name:        name,
		Description: description,
		Content:     content,
		Author:      author,
		CreatedAt:   today,
		UpdatedAt:   today,
	}
	db.Documents = append(db.Documents, d)
	s.saveDocuments(db)
	return d
}

// AppendDocuments appends a pre-built batch in a single mutation and
// persists once. Used by the import pipeline so a batch is committed
// whole or not at all. An empty batch does not touch the slot.
func (s Store) AppendDocuments(db *DB, docs []model.Document) {
	if len(docs) == 0 {
		return
	}
	db.Documents = append(db.Documents, docs...)
	s.saveDocuments(db)
}

func (s Store) UpdateDocument(db *DB, id string, patch DocumentPatch) bool {
	d, ok := db.FindDocument(id)
	if !ok {
		s.log.Info("update ignored; document not found", zap.String("id", id))
		return false
	}
	if patch.Name != nil {
		d.Name = *patch.Name
	}
	if patch.Description != nil {
		d.Description = *patch.Description
	}
	if patch.Content != nil {
		d.Content = *patch.Content
	}
	if patch.Author != nil {
		d.Author = *patch.Author
	}
	d.UpdatedAt = model.Today()
	s.saveDocuments(db)
	return true
}

func (s Store) DeleteDocument(db *DB, id string) bool {
	for i := range db.Documents {
		if db.Documents[i].ID == id {
			db.Documents = append(db.Documents[:i], db.Documents[i+1:]...)
			s.saveDocuments(db)
			return true
		}
	}
	s.log.Info("delete ignored; document not found", zap.String("id", id))
	return false
}
