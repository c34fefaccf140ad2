package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSweepEmpty(t *testing.T) {
	rules := NewTagRules("", "", "")

	t.Run("collapses regions that received no files", func(t *testing.T) {
		doc := "<!-- inject:coffee -->\n<script src=\"stale.coffee\"></script>\n<!-- endinject -->"

		out, cleared := SweepEmpty(doc, "html", rules, map[string]struct{}{}, false)

		assert.Equal(t, "<!-- inject:coffee -->\n<!-- endinject -->", out)
		assert.Equal(t, 1, cleared)
	})

	t.Run("removes whole regions when remove tags is set", func(t *testing.T) {
		doc := "before<!-- inject:coffee -->\nstale\n<!-- endinject -->after"

		out, cleared := SweepEmpty(doc, "html", rules, map[string]struct{}{}, true)

		assert.Equal(t, "beforeafter", out)
		assert.Equal(t, 1, cleared)
	})

	t.Run("leaves populated regions untouched", func(t *testing.T) {
		doc := "<!-- inject:js -->\n<script src=\"a.js\"></script>\n<!-- endinject -->\n" +
			"<!-- inject:coffee -->\nstale\n<!-- endinject -->"
		matched := map[string]struct{}{"<!-- inject:js -->": {}}

		out, cleared := SweepEmpty(doc, "html", rules, matched, false)

		assert.Contains(t, out, "<script src=\"a.js\"></script>")
		assert.NotContains(t, out, "stale")
		assert.Equal(t, 1, cleared)
	})

	t.Run("no unmatched regions clears nothing", func(t *testing.T) {
		doc := "<!-- inject:js -->x<!-- endinject -->"
		matched := map[string]struct{}{"<!-- inject:js -->": {}}

		out, cleared := SweepEmpty(doc, "html", rules, matched, false)

		assert.Equal(t, doc, out)
		assert.Equal(t, 0, cleared)
	})
}
