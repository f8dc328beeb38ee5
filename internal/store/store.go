package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"annota-cli/internal/logging"
	"annota-cli/internal/model"
)

// The two persisted slots. Each holds the full JSON array for its
// collection and is rewritten wholesale on every mutation; there is no
// incremental diffing at this scale.
const (
	projectsFileName  = "projects_v1.json"
	documentsFileName = "documents_v1.json"
)

// DB holds the in-memory collections. Both are owned exclusively by the
// Store's mutators; views read them, nothing else writes them.
// Insertion order is the canonical order.
type DB struct {
	Projects  []model.Project
	Documents []model.Document
}

type Store struct {
	Dir string

	log *zap.Logger
}

// New returns a Store rooted at dir. A nil logger means silent
// operation (persistence failures are still swallowed, just unlogged).
func New(dir string, log *zap.Logger) Store {
	if log == nil {
		log = logging.Nop()
	}
	return Store{Dir: dir, log: log}
}

// Log exposes the store's logger so collaborators (the import pipeline,
// the TUI) share one operational log.
func (s Store) Log() *zap.Logger { return s.log }

// DiscoverDir walks upward from start looking for an existing .annota
// workspace directory.
func DiscoverDir(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, ".annota")
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func DefaultDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if found, ok := DiscoverDir(cwd); ok {
		return found, nil
	}
	return filepath.Join(cwd, ".annota"), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) projectsPath() string {
	return filepath.Join(s.Dir, projectsFileName)
}

func (s Store) documentsPath() string {
	return filepath.Join(s.Dir, documentsFileName)
}

// Load reads both slots. It never fails: an absent or malformed slot is
// replaced by the built-in seed collection, and the substitution is
// logged rather than surfaced.
func (s Store) Load() *DB {
	if err := s.Ensure(); err != nil {
		s.log.Warn("workspace dir unavailable; starting from seed data", zap.String("dir", s.Dir), zap.Error(err))
	}
	seed := newSeedData()

	db := &DB{}
	db.Projects = s.loadProjects(seed)
	db.Documents = s.loadDocuments(seed, db.Projects)
	return db
}

func (s Store) loadProjects(seed seedData) []model.Project {
	raw, err := os.ReadFile(s.projectsPath())
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn("projects slot unreadable; using seed collection", zap.Error(err))
		}
		return seed.projects
	}
	projects, err := decodeProjects(raw)
	if err != nil {
		s.log.Warn("projects slot malformed; discarding in favor of seed collection", zap.Error(err))
		return seed.projects
	}
	return projects
}

func (s Store) loadDocuments(seed seedData, projects []model.Project) []model.Document {
	raw, err := os.ReadFile(s.documentsPath())
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn("documents slot unreadable; using seed collection", zap.Error(err))
		}
		return seed.documents
	}
	documents, err := decodeDocuments(raw, projects)
	if err != nil {
		s.log.Warn("documents slot malformed; discarding in favor of seed collection", zap.Error(err))
		return seed.documents
	}
	return documents
}

// saveProjects rewrites the projects slot. Persistence is best-effort:
// a failed write is logged and the in-memory session carries on.
func (s Store) saveProjects(db *DB) {
	s.saveSlot(s.projectsPath(), db.Projects)
}

func (s Store) saveDocuments(db *DB) {
	s.saveSlot(s.documentsPath(), db.Documents)
}

func (s Store) saveSlot(path string, collection any) {
	if err := s.Ensure(); err != nil {
		s.log.Warn("persist skipped; workspace dir unavailable", zap.String("slot", filepath.Base(path)), zap.Error(err))
		return
	}
	b, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		s.log.Warn("persist skipped; encode failed", zap.String("slot", filepath.Base(path)), zap.Error(err))
		return
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		s.log.Warn("persist failed; session continues in memory only", zap.String("slot", filepath.Base(path)), zap.Error(err))
	}
}

func (db *DB) FindProject(id string) (*model.Project, bool) {
	for i := range db.Projects {
		if db.Projects[i].ID == id {
			return &db.Projects[i], true
		}
	}
	return nil, false
}

func (db *DB) FindDocument(id string) (*model.Document, bool) {
	for i := range db.Documents {
		if db.Documents[i].ID == id {
			return &db.Documents[i], true
		}
	}
	return nil, false
}

// DocumentsForProject returns the documents referencing projectID, in
// insertion order. A linear scan is fine at this scale; there is no
// back-index from project to documents.
func (db *DB) DocumentsForProject(projectID string) []model.Document {
	var out []model.Document
	for _, d := range db.Documents {
		if d.ProjectID == projectID {
			out = append(out, d)
		}
	}
	return out
}
