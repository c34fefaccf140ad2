package domain

import (
	m "weave.dev/pkg/weave/internal/model"
	"weave.dev/pkg/weave/pkg"
)

// GroupFiles partitions the source collection by the tag pair each file
// resolves to for the given target extension. Groups come back in
// first-encounter order and keep their files in arrival order, since render
// output is positional.
func GroupFiles(files []m.SourceFile, targetExt string, rules *TagRules) []m.Group {
	groups := pkg.NewOrderedMap[string, *m.Group]()

	for _, file := range files {
		pair := rules.Resolve(targetExt, file.Ext)

		group, ok := groups.Get(pair.Key())
		if !ok {
			group = &m.Group{Pair: pair}
			groups.Set(pair.Key(), group)
		}

		group.Files = append(group.Files, file)
	}

	out := make([]m.Group, 0, groups.Len())

	_ = groups.Range(func(_ string, group *m.Group) error {
		out = append(out, *group)
		return nil
	})

	return out
}
