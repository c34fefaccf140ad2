// Package model defines the data structures for reference injection.
package model

// TagPair delimits one injectable region: the literal start and end markers.
type TagPair struct {
	Start string
	End   string
}

// Key uniquely identifies a tag pair within one injection pass.
func (t TagPair) Key() string {
	return t.Start + t.End
}

// Region is one matched tagged region inside a target document.
type Region struct {
	Full     string // entire matched text, start tag through end tag
	StartTag string // start tag as it appears in the document
	Indent   string // whitespace between the start tag and the first content character
	Inner    string // stale content between the tags, always discarded
	EndTag   string // end tag as it appears in the document
	Ext      string // wildcard source extension, when the start tag had a placeholder
	Pos      int    // byte offset of the match in the document
}

// Group is the ordered set of source files that resolved to one tag pair for
// a given target document. Order is arrival order; render output is
// positional (index, is-last), so it must be preserved.
type Group struct {
	Pair  TagPair
	Files []SourceFile
}
