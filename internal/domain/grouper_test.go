package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "weave.dev/pkg/weave/internal/model"
)

func sourceFiles(paths ...string) []m.SourceFile {
	files := make([]m.SourceFile, 0, len(paths))
	for _, path := range paths {
		files = append(files, m.NewSourceFile(m.Path(path), nil))
	}

	return files
}

func TestGroupFiles(t *testing.T) {
	rules := NewTagRules("", "", "")

	t.Run("partitions by resolved tag pair in first-encounter order", func(t *testing.T) {
		files := sourceFiles("a.js", "style.css", "b.js")

		groups := GroupFiles(files, "html", rules)

		require.Len(t, groups, 2)
		assert.Equal(t, "<!-- inject:js -->", groups[0].Pair.Start)
		assert.Equal(t, "<!-- inject:css -->", groups[1].Pair.Start)
	})

	t.Run("files keep arrival order within their group", func(t *testing.T) {
		files := sourceFiles("a.js", "style.css", "b.js", "c.js")

		groups := GroupFiles(files, "html", rules)

		require.Len(t, groups, 2)
		assert.Equal(t, m.Path("a.js"), groups[0].Files[0].Path)
		assert.Equal(t, m.Path("b.js"), groups[0].Files[1].Path)
		assert.Equal(t, m.Path("c.js"), groups[0].Files[2].Path)
	})

	t.Run("every file lands in exactly one group", func(t *testing.T) {
		files := sourceFiles("a.js", "style.css", "b.js", "logo.png")

		groups := GroupFiles(files, "html", rules)

		total := 0
		for _, group := range groups {
			total += len(group.Files)
		}

		assert.Equal(t, len(files), total)
	})

	t.Run("explicit overrides collapse everything into one group", func(t *testing.T) {
		overridden := NewTagRules("", "<!-- assets -->", "<!-- endassets -->")
		files := sourceFiles("a.js", "style.css")

		groups := GroupFiles(files, "html", overridden)

		require.Len(t, groups, 1)
		assert.Len(t, groups[0].Files, 2)
	})

	t.Run("no files yields no groups", func(t *testing.T) {
		assert.Empty(t, GroupFiles(nil, "html", rules))
	})
}
