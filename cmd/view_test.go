package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "weave.dev/pkg/weave/internal/model"
)

func TestViewCmd(t *testing.T) {
	t.Run("loads the report from the configured path", func(t *testing.T) {
		fake := &fakeInjector{}

		_, err := execute(t, fake, "view")
		require.NoError(t, err)

		assert.Equal(t, m.Path(defaultReportPath), fake.viewPath)
	})

	t.Run("honors the output flag", func(t *testing.T) {
		fake := &fakeInjector{}

		t.Cleanup(func() {
			flag := rootCmd.PersistentFlags().Lookup(outputFlagName)
			require.NoError(t, flag.Value.Set(defaultReportPath))
			flag.Changed = false
		})

		_, err := execute(t, fake, "view", "-o", "custom-report.yaml")
		require.NoError(t, err)

		assert.Equal(t, m.Path("custom-report.yaml"), fake.viewPath)
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		_, err := execute(t, &fakeInjector{}, "view", "extra")

		require.Error(t, err)
	})
}
