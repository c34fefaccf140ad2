package domain

import (
	"strings"

	m "weave.dev/pkg/weave/internal/model"
)

// ReplaceOutcome is what one replacement pass over a document produced.
type ReplaceOutcome struct {
	Content          string
	MatchedStartTags map[string]struct{}
	Regions          int
	Lines            int
}

// ReplaceRegions substitutes every tagged region targeted by a group with the
// freshly rendered file list. Groups are processed in their given order; each
// group's pattern touches only its own regions, so groups never interfere.
// Every match is re-rendered fresh and joined with its own captured indent,
// so each region keeps the indentation style it was authored with. With
// removeTags set the literal tag markers are stripped from the output.
//
// An unmatched tag pair yields zero replacements; this never errors.
func ReplaceRegions(doc m.TargetDocument, groups []m.Group, render Renderer, pathFor func(m.SourceFile) string, removeTags bool) ReplaceOutcome {
	out := ReplaceOutcome{
		Content:          doc.Content,
		MatchedStartTags: make(map[string]struct{}),
	}

	for _, group := range groups {
		pattern := CompilePattern(group.Pair)

		out.Content = pattern.ReplaceAll(out.Content, func(region m.Region) string {
			out.MatchedStartTags[region.StartTag] = struct{}{}
			out.Regions++

			parts := make([]string, 0, len(group.Files)+2)
			if !removeTags {
				parts = append(parts, region.StartTag)
			}

			total := len(group.Files)

			for index, file := range group.Files {
				line, ok := render(pathFor(file), file, index, total, doc)
				if !ok {
					// Skipped files contribute nothing, not an empty line.
					continue
				}

				parts = append(parts, line)
				out.Lines++
			}

			if !removeTags {
				parts = append(parts, region.EndTag)
			}

			return strings.Join(parts, region.Indent)
		})
	}

	return out
}
