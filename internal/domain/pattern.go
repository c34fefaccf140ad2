package domain

import (
	"regexp"
	"strings"

	m "weave.dev/pkg/weave/internal/model"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Pattern is the compiled matching rule for one tag pair. Built once per pair
// and never mutated afterwards.
type Pattern struct {
	re        *regexp.Regexp
	startIdx  int
	indentIdx int
	innerIdx  int
	endIdx    int
	extIdx    int
}

// CompilePattern builds the matching rule for a tag pair. Tag text matches
// literally except that each whitespace run inside a tag tolerates any amount
// of whitespace (including none) and the AnyExt placeholder matches one or
// more characters, captured so the sweep can recover the extension token.
// Matching is case-insensitive and spans newlines; the region body is
// non-greedy up to the first end tag.
func CompilePattern(pair m.TagPair) *Pattern {
	expr := "(?is)(?P<start>" + tagExpr(pair.Start, true) +
		`)(?P<indent>\s*)(?P<inner>.*?)(?P<end>` + tagExpr(pair.End, false) + ")"
	re := regexp.MustCompile(expr)

	return &Pattern{
		re:        re,
		startIdx:  re.SubexpIndex("start"),
		indentIdx: re.SubexpIndex("indent"),
		innerIdx:  re.SubexpIndex("inner"),
		endIdx:    re.SubexpIndex("end"),
		extIdx:    re.SubexpIndex("ext"),
	}
}

// tagExpr turns a literal tag into its regular-expression form: metacharacters
// escaped, whitespace runs relaxed to \s*, the wildcard placeholder replaced
// by a one-or-more match (captured once when capture is set).
func tagExpr(tag string, capture bool) string {
	segments := strings.Split(tag, AnyExt)

	escaped := make([]string, len(segments))
	for i, segment := range segments {
		escaped[i] = whitespaceRun.ReplaceAllString(regexp.QuoteMeta(segment), `\s*`)
	}

	if len(escaped) == 1 {
		return escaped[0]
	}

	var b strings.Builder

	b.WriteString(escaped[0])

	for i, segment := range escaped[1:] {
		if capture && i == 0 {
			b.WriteString(`(?P<ext>.+?)`)
		} else {
			b.WriteString(`.+?`)
		}

		b.WriteString(segment)
	}

	return b.String()
}

// Matches returns every non-overlapping tagged region in content, in document order.
func (p *Pattern) Matches(content string) []m.Region {
	indexes := p.re.FindAllStringSubmatchIndex(content, -1)

	regions := make([]m.Region, 0, len(indexes))
	for _, ix := range indexes {
		regions = append(regions, p.region(content, ix))
	}

	return regions
}

// ReplaceAll rewrites every matched region with fn's result, leaving the rest
// of the content byte-identical.
func (p *Pattern) ReplaceAll(content string, fn func(m.Region) string) string {
	indexes := p.re.FindAllStringSubmatchIndex(content, -1)
	if len(indexes) == 0 {
		return content
	}

	var b strings.Builder

	last := 0

	for _, ix := range indexes {
		b.WriteString(content[last:ix[0]])
		b.WriteString(fn(p.region(content, ix)))

		last = ix[1]
	}

	b.WriteString(content[last:])

	return b.String()
}

func (p *Pattern) region(content string, ix []int) m.Region {
	group := func(i int) string {
		if i < 0 || ix[2*i] < 0 {
			return ""
		}

		return content[ix[2*i]:ix[2*i+1]]
	}

	return m.Region{
		Full:     content[ix[0]:ix[1]],
		StartTag: group(p.startIdx),
		Indent:   group(p.indentIdx),
		Inner:    group(p.innerIdx),
		EndTag:   group(p.endIdx),
		Ext:      group(p.extIdx),
		Pos:      ix[0],
	}
}
