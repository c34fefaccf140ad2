package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "weave.dev/pkg/weave/internal/model"
)

var jsPair = m.TagPair{Start: "<!-- inject:js -->", End: "<!-- endinject -->"}

func TestPattern_Matches(t *testing.T) {
	t.Run("captures start tag, indent, inner content and end tag", func(t *testing.T) {
		pattern := CompilePattern(jsPair)
		doc := "before\n<!-- inject:js -->\n  old line\n<!-- endinject -->\nafter"

		regions := pattern.Matches(doc)

		require.Len(t, regions, 1)
		assert.Equal(t, "<!-- inject:js -->", regions[0].StartTag)
		assert.Equal(t, "\n  ", regions[0].Indent)
		assert.Equal(t, "old line\n", regions[0].Inner)
		assert.Equal(t, "<!-- endinject -->", regions[0].EndTag)
		assert.Equal(t, len("before\n"), regions[0].Pos)
	})

	t.Run("tolerates whitespace variance inside tags", func(t *testing.T) {
		pattern := CompilePattern(jsPair)

		regions := pattern.Matches("<!--inject:js--><!--  endinject  -->")

		require.Len(t, regions, 1)
		assert.Equal(t, "<!--inject:js-->", regions[0].StartTag)
		assert.Empty(t, regions[0].Indent)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		pattern := CompilePattern(jsPair)

		regions := pattern.Matches("<!-- INJECT:JS --><!-- ENDINJECT -->")

		require.Len(t, regions, 1)
	})

	t.Run("body is non-greedy up to the first end tag", func(t *testing.T) {
		pattern := CompilePattern(jsPair)
		doc := "<!-- inject:js -->one<!-- endinject -->x<!-- inject:js -->two<!-- endinject -->"

		regions := pattern.Matches(doc)

		require.Len(t, regions, 2)
		assert.Equal(t, "one", regions[0].Inner)
		assert.Equal(t, "two", regions[1].Inner)
	})

	t.Run("wildcard placeholder captures the extension token", func(t *testing.T) {
		pattern := CompilePattern(m.TagPair{Start: "<!-- inject:{{ANY}} -->", End: "<!-- endinject -->"})

		regions := pattern.Matches("<!-- inject:coffee -->\n<!-- endinject -->")

		require.Len(t, regions, 1)
		assert.Equal(t, "coffee", regions[0].Ext)
	})

	t.Run("regex metacharacters in tags are literal", func(t *testing.T) {
		pattern := CompilePattern(m.TagPair{Start: "{/* inject:js */}", End: "{/* endinject */}"})

		regions := pattern.Matches("{/* inject:js */}{/* endinject */}")

		require.Len(t, regions, 1)
	})
}

func TestPattern_ReplaceAll(t *testing.T) {
	t.Run("rewrites matches and leaves the rest byte-identical", func(t *testing.T) {
		pattern := CompilePattern(jsPair)
		doc := "head\n<!-- inject:js -->\nstale\n<!-- endinject -->\ntail"

		out := pattern.ReplaceAll(doc, func(m.Region) string { return "X" })

		assert.Equal(t, "head\nX\ntail", out)
	})

	t.Run("no matches returns the input unchanged", func(t *testing.T) {
		pattern := CompilePattern(jsPair)

		out := pattern.ReplaceAll("nothing here", func(m.Region) string { return "X" })

		assert.Equal(t, "nothing here", out)
	})

	t.Run("each occurrence is replaced independently", func(t *testing.T) {
		pattern := CompilePattern(jsPair)
		doc := "<!-- inject:js -->a<!-- endinject -->|<!-- inject:js -->b<!-- endinject -->"

		count := 0
		out := pattern.ReplaceAll(doc, func(r m.Region) string {
			count++
			return r.Inner
		})

		assert.Equal(t, 2, count)
		assert.Equal(t, "a|b", out)
	})
}
