package cmd

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning alias", "warning", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"mixed case", "DeBuG", slog.LevelDebug},
		{"numeric", "-4", slog.LevelDebug},
		{"empty falls back", "", slog.LevelInfo},
		{"garbage falls back", "loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestValidateConfig(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, viper.ReadConfig(strings.NewReader("")))
	})

	t.Run("default configuration passes", func(t *testing.T) {
		require.NoError(t, viper.ReadConfig(strings.NewReader("")))

		assert.NoError(t, validateConfig())
	})

	t.Run("removed options fail at startup", func(t *testing.T) {
		require.NoError(t, viper.ReadConfig(strings.NewReader("inject:\n  sort: name\n")))

		err := validateConfig()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "inject.sort")
		assert.Contains(t, err.Error(), "no longer supported")
	})

	t.Run("removed template option fails at startup", func(t *testing.T) {
		require.NoError(t, viper.ReadConfig(strings.NewReader("inject:\n  template_string: '{{.}}'\n")))

		err := validateConfig()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "inject.template_string")
	})
}

func TestConfigureLogger(t *testing.T) {
	t.Run("verbose enables debug logging", func(t *testing.T) {
		configureLogger(filepath.Join(t.TempDir(), "weave.log"), true)

		require.NotNil(t, globalLogger)
		assert.True(t, globalLogger.Enabled(context.Background(), slog.LevelDebug))
	})

	t.Run("default level hides debug", func(t *testing.T) {
		configureLogger(filepath.Join(t.TempDir(), "weave.log"), false)

		require.NotNil(t, globalLogger)
		assert.False(t, globalLogger.Enabled(context.Background(), slog.LevelDebug))
		assert.True(t, globalLogger.Enabled(context.Background(), slog.LevelInfo))
	})
}
