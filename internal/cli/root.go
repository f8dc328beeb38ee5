package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"annota-cli/internal/format"
	"annota-cli/internal/logging"
	"annota-cli/internal/store"
	"annota-cli/internal/tui"
)

type App struct {
	Dir        string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "annota",
		Short:        "Annota (local-first) document annotation CLI + TUI",
		SilenceUsage: true,
		Example: `  # Start the interactive TUI
  annota

  # Scriptable commands
  annota projects list
  annota docs list --project proj-xxxxxxxx
  annota docs import --project proj-xxxxxxxx notes/*.txt

  # Direct document lookup (shortcut for: annota docs show <doc-id>)
  annota doc-xxxxxxxx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("ANNOTA_DIR", ""), "Path to workspace dir (default: nearest .annota, else ./.annota)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newProjectsCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newBackupCmd(app))
	cmd.AddCommand(newGuideCmd())

	return cmd
}

func runTUI(app *App) error {
	db, s, err := loadDB(app)
	if err != nil {
		return err
	}
	return tui.Run(app.Dir, s, db)
}

// loadDB resolves the workspace dir and loads both collections. Load
// itself never fails (seed fallback); only dir resolution can error.
func loadDB(app *App) (*store.DB, store.Store, error) {
	dir := app.Dir
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return nil, store.Store{}, err
		}
		dir = d
		app.Dir = dir
	}

	// Create the dir up front so the logger has somewhere to write; Load
	// would create it anyway.
	_ = os.MkdirAll(dir, 0o755)
	s := store.New(dir, logging.NewFile(filepath.Join(dir, "annota.log")))
	return s.Load(), s, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
