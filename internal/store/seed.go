package store

import "annota-cli/internal/model"

// seedData is the fixed built-in collection used whenever a persisted
// slot is absent or fails to parse. The seed documents reference the
// seed projects, so both are generated together; ids are fresh per
// call (the shape is fixed, the ids are not).
type seedData struct {
	projects  []model.Project
	documents []model.Document
}

func newSeedData() seedData {
	mustID := func(prefix string) string {
		id, err := newRandomID(prefix)
		if err != nil {
			id = prefix + "-seed"
		}
		return id
	}

	projects := []model.Project{
		{ID: mustID("proj"), Name: "Project A", Description: "Sample project A", CreatedAt: "2025-09-01", UpdatedAt: "2025-09-05"},
		{ID: mustID("proj"), Name: "Project B", Description: "Sample project B", CreatedAt: "2025-09-05", UpdatedAt: "2025-09-07"},
		{ID: mustID("proj"), Name: "Project C", Description: "Sample project C", CreatedAt: "2025-09-10", UpdatedAt: "2025-09-12"},
	}

	documents := []model.Document{
		{ID: mustID("doc"), ProjectID: projects[0].ID, Name: "Document 1", Description: "First sample document", CreatedAt: "2025-09-01", UpdatedAt: "2025-09-03"},
		{ID: mustID("doc"), ProjectID: projects[0].ID, Name: "Document 2", Description: "Second sample document", CreatedAt: "2025-09-05", UpdatedAt: "2025-09-07"},
		{ID: mustID("doc"), ProjectID: projects[1].ID, Name: "Document 3", Description: "Third sample document", CreatedAt: "2025-09-10", UpdatedAt: "2025-09-12"},
	}

	return seedData{projects: projects, documents: documents}
}
