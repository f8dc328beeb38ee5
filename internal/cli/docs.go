package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"annota-cli/internal/importer"
)

func newDocsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Document commands",
	}
	cmd.AddCommand(newDocsCreateCmd(app))
	cmd.AddCommand(newDocsListCmd(app))
	cmd.AddCommand(newDocsShowCmd(app))
	cmd.AddCommand(newDocsUpdateCmd(app))
	cmd.AddCommand(newDocsDeleteCmd(app))
	cmd.AddCommand(newDocsCopyCmd(app))
	cmd.AddCommand(newDocsImportCmd(app))
	return cmd
}

func newDocsCreateCmd(app *App) *cobra.Command {
	var projectID string
	var name string
	var description string
	var content string
	var author string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a document in a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			d := s.AddDocument(db, strings.TrimSpace(projectID), strings.TrimSpace(name), description, content, author)
			return writeOut(cmd, app, map[string]any{"data": d})
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Owning project id")
	cmd.Flags().StringVar(&name, "name", "", "Document name")
	cmd.Flags().StringVar(&description, "description", "", "Document description")
	cmd.Flags().StringVar(&content, "content", "", "Document content")
	cmd.Flags().StringVar(&author, "author", "", "Document author")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newDocsListCmd(app *App) *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List documents (optionally filtered by project)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if strings.TrimSpace(projectID) == "" {
				return writeOut(cmd, app, map[string]any{"data": db.Documents})
			}
			return writeOut(cmd, app, map[string]any{"data": db.DocumentsForProject(strings.TrimSpace(projectID))})
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Filter by project id")
	return cmd
}

func newDocsShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <doc-id>",
		Short: "Show one document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			d, ok := db.FindDocument(id)
			if !ok {
				return writeErr(cmd, errNotFound("document", id))
			}
			return writeOut(cmd, app, map[string]any{"data": d})
		},
	}
	return cmd
}

func newDocsUpdateCmd(app *App) *cobra.Command {
	var name string
	var description string
	var content string
	var author string

	cmd := &cobra.Command{
		Use:   "update <doc-id>",
		Short: "Update a document's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			patch := documentPatchFromFlags(cmd, name, description, content, author)
			if !s.UpdateDocument(db, id, patch) {
				return writeErr(cmd, errNotFound("document", id))
			}
			d, _ := db.FindDocument(id)
			return writeOut(cmd, app, map[string]any{"data": d})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New document name")
	cmd.Flags().StringVar(&description, "description", "", "New document description")
	cmd.Flags().StringVar(&content, "content", "", "New document content")
	cmd.Flags().StringVar(&author, "author", "", "New document author")
	return cmd
}

func newDocsDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <doc-id>",
		Short: "Delete a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return writeErr(cmd, errConfirmRequired)
			}
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			deleted := s.DeleteDocument(db, id)
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"id": id, "deleted": deleted}})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the deletion")
	return cmd
}

func newDocsCopyCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "copy <doc-id>",
		Short: "Duplicate a document under a new name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			src, ok := db.FindDocument(id)
			if !ok {
				return writeErr(cmd, errNotFound("document", id))
			}
			copyName := strings.TrimSpace(name)
			if copyName == "" {
				copyName = src.Name + " - copy"
			}
			d := s.AddDocument(db, src.ProjectID, copyName, src.Description, src.Content, src.Author)
			return writeOut(cmd, app, map[string]any{"data": d})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name for the copy (default: \"<name> - copy\")")
	return cmd
}

func newDocsImportCmd(app *App) *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "import --project <project-id> <file>...",
		Short: "Import files as documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			pid := strings.TrimSpace(projectID)
			if _, ok := db.FindProject(pid); !ok {
				return writeErr(cmd, errNotFound("project", pid))
			}
			imp := importer.New(s, s.Log())
			files := imp.ReadFiles(args)
			ids := imp.Import(cmd.Context(), db, files, pid)
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"imported": ids}})
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Target project id")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}
