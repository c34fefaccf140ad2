package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [targets...]",
		Short: "List resolved tag-pair groups per target",
		Long:  listLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := buildOptions(cmd)
			// Listing is read-only; progress noise would drown the table.
			opts.Quiet = true

			injector, err := buildInjector(opts)
			if err != nil {
				return err
			}

			report, err := injector.Estimate(cmd.Context(), buildInjectArgs(args, 1))
			if err != nil {
				return err
			}

			return ui.DisplayPlan(cmd.Context(), report)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
