// Package export writes a project's documents into a standalone SQLite
// file so they can be analyzed with external tooling. This backs the
// "analyze & export" action on the document list.
package export

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"annota-cli/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS projects (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	created_at  TEXT NOT NULL,
	updated_at  TEXT
);
CREATE TABLE IF NOT EXISTS documents (
	id          TEXT PRIMARY KEY,
	project_id  TEXT NOT NULL,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	content     TEXT NOT NULL DEFAULT '',
	author      TEXT NOT NULL DEFAULT '',
	created_at  TEXT NOT NULL,
	updated_at  TEXT
);
`

// WriteProject creates (or overwrites rows in) the SQLite file at path
// with the given project and its documents. The write is transactional:
// a half-written export is never left behind.
func WriteProject(ctx context.Context, path string, project model.Project, docs []model.Document) error {
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open export db: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create export schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin export tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO projects (id, name, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		project.ID, project.Name, project.Description, project.CreatedAt, project.UpdatedAt,
	); err != nil {
		return fmt.Errorf("export project %s: %w", project.ID, err)
	}

	for _, d := range docs {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO documents (id, project_id, name, description, content, author, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			d.ID, d.ProjectID, d.Name, d.Description, d.Content, d.Author, d.CreatedAt, d.UpdatedAt,
		); err != nil {
			return fmt.Errorf("export document %s: %w", d.ID, err)
		}
	}

	return tx.Commit()
}
