package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"annota-cli/internal/store"
)

// Destructive commands are two-phase everywhere: the TUI uses a confirm
// modal, the CLI requires --yes.
var errConfirmRequired = errors.New("refusing to delete without --yes")

// projectPatchFromFlags builds a patch from only the flags the user
// actually set, so `update --name X` leaves the description alone.
func projectPatchFromFlags(cmd *cobra.Command, name, description string) store.ProjectPatch {
	var patch store.ProjectPatch
	if cmd.Flags().Changed("name") {
		patch.Name = &name
	}
	if cmd.Flags().Changed("description") {
		patch.Description = &description
	}
	return patch
}

func documentPatchFromFlags(cmd *cobra.Command, name, description, content, author string) store.DocumentPatch {
	var patch store.DocumentPatch
	if cmd.Flags().Changed("name") {
		patch.Name = &name
	}
	if cmd.Flags().Changed("description") {
		patch.Description = &description
	}
	if cmd.Flags().Changed("content") {
		patch.Content = &content
	}
	if cmd.Flags().Changed("author") {
		patch.Author = &author
	}
	return patch
}
