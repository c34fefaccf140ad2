package domain

import (
	m "weave.dev/pkg/weave/internal/model"
)

// SweepEmpty clears tagged regions that received no files during replacement.
// It scans with the wildcard pattern for the target extension; regions whose
// start tag is in matched were already populated and come back unchanged.
// Unmatched regions are removed entirely (removeTags) or collapsed to the
// bare tag pair joined by the captured indent, dropping stale inner content.
// Returns the new content and the number of regions cleared.
func SweepEmpty(content, targetExt string, rules *TagRules, matched map[string]struct{}, removeTags bool) (string, int) {
	pattern := CompilePattern(rules.Wildcard(targetExt))
	cleared := 0

	content = pattern.ReplaceAll(content, func(region m.Region) string {
		if _, ok := matched[region.StartTag]; ok {
			return region.Full
		}

		cleared++

		if removeTags {
			return ""
		}

		return region.StartTag + region.Indent + region.EndTag
	})

	return content, cleared
}
