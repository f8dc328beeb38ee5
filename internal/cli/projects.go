package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Project commands",
	}
	cmd.AddCommand(newProjectsCreateCmd(app))
	cmd.AddCommand(newProjectsListCmd(app))
	cmd.AddCommand(newProjectsUpdateCmd(app))
	cmd.AddCommand(newProjectsDeleteCmd(app))
	return cmd
}

func newProjectsCreateCmd(app *App) *cobra.Command {
	var name string
	var description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			p := s.AddProject(db, strings.TrimSpace(name), strings.TrimSpace(description))
			return writeOut(cmd, app, map[string]any{"data": p})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&description, "description", "", "Project description")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newProjectsListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": db.Projects})
		},
	}
	return cmd
}

func newProjectsUpdateCmd(app *App) *cobra.Command {
	var name string
	var description string

	cmd := &cobra.Command{
		Use:   "update <project-id>",
		Short: "Update a project's name/description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			patch := projectPatchFromFlags(cmd, name, description)
			if !s.UpdateProject(db, id, patch) {
				return writeErr(cmd, errNotFound("project", id))
			}
			p, _ := db.FindProject(id)
			return writeOut(cmd, app, map[string]any{"data": p})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New project name")
	cmd.Flags().StringVar(&description, "description", "", "New project description")
	return cmd
}

func newProjectsDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Delete a project (documents are left in place)",
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
			deleted := s.DeleteProject(db, id)
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"id": id, "deleted": deleted}})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the deletion")
	return cmd
}
