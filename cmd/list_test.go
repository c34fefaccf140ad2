package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "weave.dev/pkg/weave/internal/model"
)

func TestListCmd(t *testing.T) {
	t.Run("prints the group breakdown without running an injection", func(t *testing.T) {
		fake := &fakeInjector{report: m.RunReport{
			Sources: 3,
			Targets: []m.TargetReport{{
				Target: "index.html",
				Groups: []m.GroupReport{{StartTag: "<!-- inject:js -->", Files: 2}},
			}},
		}}

		out, err := execute(t, fake, "list", "-s", "assets", "index.html")
		require.NoError(t, err)

		require.NotNil(t, fake.estimateArgs)
		assert.Nil(t, fake.injectArgs)
		assert.Contains(t, out, "index.html")
		assert.Contains(t, out, "<!-- inject:js -->")
	})

	t.Run("requires at least one target", func(t *testing.T) {
		_, err := execute(t, &fakeInjector{}, "list", "-s", "assets")

		require.Error(t, err)
	})
}
