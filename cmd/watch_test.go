package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchCmd(t *testing.T) {
	t.Run("initial pass failure aborts the watch", func(t *testing.T) {
		fake := &fakeInjector{injectErr: errors.New("no source files configured")}

		_, err := execute(t, fake, "watch", "-q", "-s", "assets", "index.html")

		require.Error(t, err)
		require.NotNil(t, fake.injectArgs)
	})

	t.Run("watch never writes the run report", func(t *testing.T) {
		fake := &fakeInjector{injectErr: errors.New("stop after the first pass")}

		_, err := execute(t, fake, "watch", "-q", "-s", "assets", "index.html")
		require.Error(t, err)

		assert.Empty(t, fake.injectArgs.Reports)
	})

	t.Run("requires at least one target", func(t *testing.T) {
		_, err := execute(t, &fakeInjector{}, "watch", "-q", "-s", "assets")

		require.Error(t, err)
	})
}
