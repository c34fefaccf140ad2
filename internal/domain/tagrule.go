// Package domain contains the core tag-matching and content-injection logic.
package domain

import (
	"strings"

	m "weave.dev/pkg/weave/internal/model"
)

const (
	// AnyExt is the wildcard source-extension placeholder used in rule
	// templates. It never appears literally in injected tags.
	AnyExt = "{{ANY}}"

	// DefaultName is the tag word embedded in the default tag literals.
	DefaultName = "inject"

	nameToken = "{{NAME}}"
)

type ruleKey struct {
	target string
	source string
}

type tagTemplate struct {
	start string
	end   string
}

// defaultTemplate is the global fallback when no rule matches the target extension.
var defaultTemplate = tagTemplate{
	start: "<!-- {{NAME}}:{{ANY}} -->",
	end:   "<!-- end{{NAME}} -->",
}

// defaultTemplates hold the built-in tag conventions per target extension.
var defaultTemplates = map[string]tagTemplate{
	"html":  defaultTemplate,
	"htm":   defaultTemplate,
	"jsx":   {start: "{/* {{NAME}}:{{ANY}} */}", end: "{/* end{{NAME}} */}"},
	"pug":   {start: "//- {{NAME}}:{{ANY}}", end: "//- end{{NAME}}"},
	"jade":  {start: "//- {{NAME}}:{{ANY}}", end: "//- end{{NAME}}"},
	"slim":  {start: "/ {{NAME}}:{{ANY}}", end: "/ end{{NAME}}"},
	"slm":   {start: "/ {{NAME}}:{{ANY}}", end: "/ end{{NAME}}"},
	"haml":  {start: "-# {{NAME}}:{{ANY}}", end: "-# end{{NAME}}"},
	"less":  {start: "/* {{NAME}}:{{ANY}} */", end: "/* end{{NAME}} */"},
	"sass":  {start: "/* {{NAME}}:{{ANY}} */", end: "/* end{{NAME}} */"},
	"scss":  {start: "/* {{NAME}}:{{ANY}} */", end: "/* end{{NAME}} */"},
	"css":   {start: "/* {{NAME}}:{{ANY}} */", end: "/* end{{NAME}} */"},
}

// TagRules resolves the tag pair for a (target extension, source extension)
// combination. Resolution is pure and side-effect free: within one pass the
// same combination always yields the same pair.
type TagRules struct {
	name          string
	startOverride string
	endOverride   string
	rules         map[ruleKey]tagTemplate
}

// NewTagRules builds the rule set. Explicit start/end overrides win
// unconditionally regardless of extensions; an empty name falls back to
// DefaultName.
func NewTagRules(name, startOverride, endOverride string) *TagRules {
	if name == "" {
		name = DefaultName
	}

	rules := make(map[ruleKey]tagTemplate, len(defaultTemplates))
	for ext, tpl := range defaultTemplates {
		rules[ruleKey{target: ext, source: AnyExt}] = tpl
	}

	return &TagRules{
		name:          name,
		startOverride: startOverride,
		endOverride:   endOverride,
		rules:         rules,
	}
}

// AddRule registers a tag template for a (target, source) extension pair.
// Use AnyExt as sourceExt to cover every source extension of a target.
func (r *TagRules) AddRule(targetExt, sourceExt, start, end string) {
	r.rules[ruleKey{target: targetExt, source: sourceExt}] = tagTemplate{start: start, end: end}
}

// Resolve returns the concrete tag pair for one source file extension.
func (r *TagRules) Resolve(targetExt, sourceExt string) m.TagPair {
	tpl := r.template(targetExt, sourceExt)

	return m.TagPair{
		Start: r.expand(tpl.start, sourceExt),
		End:   r.expand(tpl.end, sourceExt),
	}
}

// Wildcard returns the tag pair covering any source extension for the target,
// with the AnyExt placeholder left in place. Used by the empty-region sweep.
func (r *TagRules) Wildcard(targetExt string) m.TagPair {
	tpl := r.template(targetExt, AnyExt)

	return m.TagPair{
		Start: r.expand(tpl.start, AnyExt),
		End:   r.expand(tpl.end, AnyExt),
	}
}

func (r *TagRules) template(targetExt, sourceExt string) tagTemplate {
	tpl, ok := r.rules[ruleKey{target: targetExt, source: sourceExt}]
	if !ok {
		tpl, ok = r.rules[ruleKey{target: targetExt, source: AnyExt}]
	}

	if !ok {
		tpl = defaultTemplate
	}

	if r.startOverride != "" {
		tpl.start = r.startOverride
	}

	if r.endOverride != "" {
		tpl.end = r.endOverride
	}

	return tpl
}

// expand substitutes the name token, and the wildcard placeholder unless the
// caller wants it preserved (sourceExt == AnyExt).
func (r *TagRules) expand(tpl, sourceExt string) string {
	out := strings.ReplaceAll(tpl, nameToken, r.name)
	if sourceExt != AnyExt {
		out = strings.ReplaceAll(out, AnyExt, sourceExt)
	}

	return out
}
