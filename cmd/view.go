package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "weave.dev/pkg/weave/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the report of the last injection run",
		Long:  "View the run report written by the last `weave run` from the report path.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			injector, err := buildInjector(buildOptions(cmd))
			if err != nil {
				return err
			}

			return injector.View(cmd.Context(), m.Path(viper.GetString(outputFlagName)))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
