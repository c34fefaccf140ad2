package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "weave"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName     = "output"
	quietFlagName      = "quiet"
	sourceFlagName     = "source"
	excludeFlagName    = "exclude"
	relativeFlagName   = "relative"
	rootSlashFlagName  = "root-slash"
	removeTagsFlagName = "remove-tags"
	emptyFlagName      = "empty"
	startTagFlagName   = "starttag"
	endTagFlagName     = "endtag"
	nameFlagName       = "name"

	runParallelFlagName   = "parallel"
	watchDebounceFlagName = "debounce"

	sourceConfigKey     = "paths.sources"
	excludeConfigKey    = "paths.exclude"
	relativeConfigKey   = "inject.relative"
	rootSlashConfigKey  = "inject.root_slash"
	removeTagsConfigKey = "inject.remove_tags"
	emptyConfigKey      = "inject.empty"
	startTagConfigKey   = "inject.starttag"
	endTagConfigKey     = "inject.endtag"
	nameConfigKey       = "inject.name"

	runParallelConfigKey   = "run.parallel"
	watchDebounceConfigKey = "watch.debounce"

	defaultReportPath  = ".weave-report.yaml"
	defaultRunParallel = 1
	defaultTagName     = "inject"

	defaultWatchDebounce = 300 * time.Millisecond

	envPrefix = "WEAVE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".weave.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// removedConfigKeys are options earlier releases accepted. They fail loudly
// at startup now instead of being silently ignored.
var removedConfigKeys = []string{
	"inject.template_string",
	"inject.sort",
}

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportPath)
	viper.SetDefault(quietFlagName, false)
	viper.SetDefault(sourceConfigKey, []string{})
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(relativeConfigKey, false)
	viper.SetDefault(rootSlashConfigKey, false)
	viper.SetDefault(removeTagsConfigKey, false)
	viper.SetDefault(emptyConfigKey, false)
	viper.SetDefault(startTagConfigKey, "")
	viper.SetDefault(endTagConfigKey, "")
	viper.SetDefault(nameConfigKey, defaultTagName)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(watchDebounceConfigKey, defaultWatchDebounce)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// validateConfig rejects configuration that must fail before any document is
// processed, e.g. options removed in this major version.
func validateConfig() error {
	for _, key := range removedConfigKeys {
		if viper.InConfig(key) {
			return fmt.Errorf("config option %q is no longer supported", key)
		}
	}

	return nil
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
