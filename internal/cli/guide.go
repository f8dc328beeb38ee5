package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"annota-cli/internal/guide"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the built-in manual",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Topics:")
				for _, t := range guide.Topics() {
					fmt.Fprintln(cmd.OutOrStdout(), "  "+t)
				}
				return nil
			}

			md, ok := guide.Get(args[0])
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown topic %q (try: %s)", args[0], strings.Join(guide.Topics(), ", ")))
			}

			r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
			if err == nil {
				if out, rerr := r.Render(md); rerr == nil {
					md = out
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		},
	}
}
