package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"weave.dev/pkg/weave/internal/adapter"
)

var watchDebounceFlag time.Duration

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [targets...]",
		Short: "Re-inject whenever sources or targets change",
		Long: `Run one injection pass, then keep watching the source collection and the
target documents and re-run the pass on every (debounced) change. Stop with
Ctrl-C.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := buildOptions(cmd)

			injector, err := buildInjector(opts)
			if err != nil {
				return err
			}

			injectArgs := buildInjectArgs(args, viper.GetInt(runParallelConfigKey))
			// The report rewrite would retrigger the watcher on every pass.
			injectArgs.Reports = ""

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if _, err := injector.Inject(ctx, injectArgs); err != nil {
				return err
			}

			debounce := viper.GetDuration(watchDebounceConfigKey)

			logPath := viper.GetString(logFilenameKey)
			watcher, err := adapter.NewWatcher(debounce, func(path string) bool {
				return !strings.HasSuffix(path, logPath)
			})
			if err != nil {
				return err
			}
			defer func() { _ = watcher.Close() }()

			for _, path := range append(injectArgs.Sources, injectArgs.Targets...) {
				if err := watcher.Add(path); err != nil {
					return err
				}
			}

			err = watcher.Run(ctx, func(paths []string) error {
				slog.Info("change detected, re-injecting", "changed", len(paths))

				_, err := injector.Inject(ctx, injectArgs)

				return err
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}

			return err
		},
	}

	configureWatchFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func configureWatchFlags(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&watchDebounceFlag, watchDebounceFlagName, defaultWatchDebounce, "delay before a burst of changes triggers one re-injection")
	bindFlagToConfig(cmd.Flags().Lookup(watchDebounceFlagName), watchDebounceConfigKey)
}
