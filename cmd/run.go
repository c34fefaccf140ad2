package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var runParallelFlag int

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [targets...]",
		Short: "Inject the source collection into target documents",
		Long:  runLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := buildOptions(cmd)

			injector, err := buildInjector(opts)
			if err != nil {
				return err
			}

			threads := viper.GetInt(runParallelConfigKey)

			report, err := injector.Inject(cmd.Context(), buildInjectArgs(args, threads))
			if err != nil {
				return err
			}

			if opts.Quiet {
				return nil
			}

			return ui.DisplayRunSummary(cmd.Context(), report)
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of target documents processed in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)
}
