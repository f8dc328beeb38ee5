package cli

import (
	"time"

	"github.com/spf13/cobra"
)

func newBackupCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Snapshot the workspace collections into backups/<timestamp>",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, s, err := loadDB(app)
			if err != nil {
				return err
			}
			dest, err := s.Backup(time.Now())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]string{"backup": dest})
		},
	}
}
