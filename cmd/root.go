// Package cmd provides the root command and CLI setup for weave.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"weave.dev/pkg/weave/internal/adapter"
	"weave.dev/pkg/weave/internal/controller"
	"weave.dev/pkg/weave/internal/domain"
	m "weave.dev/pkg/weave/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var ui controller.UI

// injectorOverride lets tests swap in a mock workflow.
var injectorOverride domain.Injector

// reportOutputFlag is a root-level flag shared by commands that read/write the run report.
var reportOutputFlag string

// quietFlag suppresses progress reporting when set.
var quietFlag bool

// sourcePaths is the root-level flag naming the source file collection.
var sourcePaths []string

// excludePatterns filters gathered source files by regex.
var excludePatterns []string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
}

const sourcePatternsHelp = `Source files are gathered once per run and shared across all targets:
  - -s ./dist/js          every file under the directory, recursively
  - -s ./dist/app.js      a single file
  - -x '\.map$'           exclude files matching a regex (can be repeated)`

const rootLongDescription = `Weave keeps generated file lists in templates synchronized with an actual
set of files. It finds tagged regions like <!-- inject:js --> ... <!-- endinject -->
in target documents and replaces their content with rendered references
(script tags, stylesheet links, imports) to the source collection.

` + sourcePatternsHelp

const runLongDescription = `Inject the source collection into the given target documents (in place).

` + sourcePatternsHelp

const listLongDescription = `List the tag-pair groups each target resolves, without writing anything.

` + sourcePatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weave",
		Short: "Inject file references into tagged template regions",
		Long:  rootLongDescription,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			configureLogger("", viper.GetBool(logVerboseKey))
			return validateConfig()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportOutputFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"path of the run report written after an injection run",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&quietFlag, quietFlagName, "q", viper.GetBool(quietFlagName), "suppress progress reporting")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(quietFlagName), quietFlagName)

	cmd.PersistentFlags().StringArrayVarP(&sourcePaths, sourceFlagName, "s", viper.GetStringSlice(sourceConfigKey), "source file or directory to inject (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(sourceFlagName), sourceConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude source files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().Bool(relativeFlagName, viper.GetBool(relativeConfigKey), "inject paths relative to each target document")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(relativeFlagName), relativeConfigKey)

	cmd.PersistentFlags().Bool(rootSlashFlagName, viper.GetBool(rootSlashConfigKey), "prefix injected paths with / (default: true unless --relative)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(rootSlashFlagName), rootSlashConfigKey)

	cmd.PersistentFlags().Bool(removeTagsFlagName, viper.GetBool(removeTagsConfigKey), "strip the tag markers from the output")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(removeTagsFlagName), removeTagsConfigKey)

	cmd.PersistentFlags().Bool(emptyFlagName, viper.GetBool(emptyConfigKey), "also clear tagged regions that receive no files")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(emptyFlagName), emptyConfigKey)

	cmd.PersistentFlags().String(startTagFlagName, viper.GetString(startTagConfigKey), "explicit start tag, bypassing extension-based rules")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(startTagFlagName), startTagConfigKey)

	cmd.PersistentFlags().String(endTagFlagName, viper.GetString(endTagConfigKey), "explicit end tag, bypassing extension-based rules")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(endTagFlagName), endTagConfigKey)

	cmd.PersistentFlags().String(nameFlagName, viper.GetString(nameConfigKey), "tag word used in the default tag literals")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(nameFlagName), nameConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// buildOptions assembles the injection options from flags and config.
// Root-slash defaults to the negation of relative unless set explicitly.
func buildOptions(cmd *cobra.Command) domain.Options {
	relative := viper.GetBool(relativeConfigKey)

	rootSlash := !relative
	if cmd.Flags().Changed(rootSlashFlagName) || viper.InConfig(rootSlashConfigKey) {
		rootSlash = viper.GetBool(rootSlashConfigKey)
	}

	return domain.Options{
		Quiet:        viper.GetBool(quietFlagName),
		Relative:     relative,
		AddRootSlash: rootSlash,
		RemoveTags:   viper.GetBool(removeTagsConfigKey),
		Empty:        viper.GetBool(emptyConfigKey),
		StartTag:     viper.GetString(startTagConfigKey),
		EndTag:       viper.GetString(endTagConfigKey),
		Name:         viper.GetString(nameConfigKey),
	}
}

// buildInjector constructs the workflow, surfacing configuration errors
// before any document is touched.
func buildInjector(opts domain.Options) (domain.Injector, error) {
	if injectorOverride != nil {
		return injectorOverride, nil
	}

	return domain.NewInjector(fsAdapter, reportStore, ui, opts)
}

// buildInjectArgs names the inputs of one run: targets from the command line,
// sources and filters from flags/config.
func buildInjectArgs(targets []string, threads int) domain.InjectArgs {
	return domain.InjectArgs{
		Sources: parsePaths(viper.GetStringSlice(sourceConfigKey)),
		Targets: parsePaths(targets),
		Exclude: viper.GetStringSlice(excludeConfigKey),
		Reports: m.Path(viper.GetString(outputFlagName)),
		Threads: threads,
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
