package cmd

import (
	"github.com/spf13/cobra"
)

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff [targets...]",
		Short: "Show what an injection run would change, without writing",
		Long: `Run the full injection pass in memory and print a unified diff per target
document that would change. Exits cleanly with no output when everything is
already in sync.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := buildOptions(cmd)
			opts.Quiet = true

			injector, err := buildInjector(opts)
			if err != nil {
				return err
			}

			diffs, err := injector.Diff(cmd.Context(), buildInjectArgs(args, 1))
			if err != nil {
				return err
			}

			return ui.DisplayDiffs(cmd.Context(), diffs)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
