package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "weave.dev/pkg/weave/internal/model"
)

func TestTagRules_Resolve(t *testing.T) {
	t.Run("html target uses comment tags with the source extension", func(t *testing.T) {
		rules := NewTagRules("", "", "")

		pair := rules.Resolve("html", "js")

		assert.Equal(t, "<!-- inject:js -->", pair.Start)
		assert.Equal(t, "<!-- endinject -->", pair.End)
	})

	t.Run("custom name feeds the default tag literals", func(t *testing.T) {
		rules := NewTagRules("scripts", "", "")

		pair := rules.Resolve("html", "js")

		assert.Equal(t, "<!-- scripts:js -->", pair.Start)
		assert.Equal(t, "<!-- endscripts -->", pair.End)
	})

	t.Run("explicit overrides win regardless of extensions", func(t *testing.T) {
		rules := NewTagRules("", "<<start>>", "<<end>>")

		pair := rules.Resolve("html", "js")

		assert.Equal(t, m.TagPair{Start: "<<start>>", End: "<<end>>"}, pair)
	})

	t.Run("override containing the wildcard expands per source extension", func(t *testing.T) {
		rules := NewTagRules("", "## {{ANY}} ##", "## end ##")

		assert.Equal(t, "## css ##", rules.Resolve("html", "css").Start)
		assert.Equal(t, "## js ##", rules.Resolve("html", "js").Start)
	})

	t.Run("exact rule beats the wildcard rule for the target", func(t *testing.T) {
		rules := NewTagRules("", "", "")
		rules.AddRule("html", "js", "<!-- scripts here -->", "<!-- no more scripts -->")

		assert.Equal(t, "<!-- scripts here -->", rules.Resolve("html", "js").Start)
		assert.Equal(t, "<!-- inject:css -->", rules.Resolve("html", "css").Start)
	})

	t.Run("unknown target extension falls back to the global default", func(t *testing.T) {
		rules := NewTagRules("", "", "")

		pair := rules.Resolve("txt", "js")

		assert.Equal(t, "<!-- inject:js -->", pair.Start)
	})

	t.Run("pug target uses line-comment tags", func(t *testing.T) {
		rules := NewTagRules("", "", "")

		pair := rules.Resolve("pug", "css")

		assert.Equal(t, "//- inject:css", pair.Start)
		assert.Equal(t, "//- endinject", pair.End)
	})

	t.Run("resolution is deterministic", func(t *testing.T) {
		rules := NewTagRules("", "", "")

		first := rules.Resolve("html", "js")
		second := rules.Resolve("html", "js")

		assert.Equal(t, first, second)
	})
}

func TestTagRules_Wildcard(t *testing.T) {
	rules := NewTagRules("", "", "")

	pair := rules.Wildcard("html")

	assert.Equal(t, "<!-- inject:{{ANY}} -->", pair.Start)
	assert.Equal(t, "<!-- endinject -->", pair.End)
}
