package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"annota-cli/internal/export"
)

func newExportCmd(app *App) *cobra.Command {
	var projectID string
	var out string

	cmd := &cobra.Command{
		Use:   "export --project <project-id> [--out file.sqlite]",
		Short: "Export a project's documents to a SQLite file",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			pid := strings.TrimSpace(projectID)
			p, ok := db.FindProject(pid)
			if !ok {
				return writeErr(cmd, errNotFound("project", pid))
			}
			path := strings.TrimSpace(out)
			if path == "" {
				path = pid + ".sqlite"
			}
			if err := export.WriteProject(cmd.Context(), path, *p, db.DocumentsForProject(pid)); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"project": pid, "path": path, "documents": len(db.DocumentsForProject(pid))}})
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project id to export")
	cmd.Flags().StringVar(&out, "out", "", "Output file (default: <project-id>.sqlite)")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}
