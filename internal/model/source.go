package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// Ext returns the path's extension without the leading dot, lower-cased.
// An extension-less path yields the empty string.
func (p Path) Ext() string {
	ext := filepath.Ext(string(p))

	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// SourceFile is one file whose reference gets injected into target documents.
// Content is opaque to the engine; only renderers may look at it.
type SourceFile struct {
	Path    Path
	Ext     string
	Content []byte
}

// NewSourceFile builds a SourceFile, deriving the extension from the path.
func NewSourceFile(path Path, content []byte) SourceFile {
	return SourceFile{
		Path:    path,
		Ext:     path.Ext(),
		Content: content,
	}
}

// TargetDocument is a document that receives injected references. Content is
// read once at the start of a pass, mutated through successive region
// replacements and written back exactly once at the end.
type TargetDocument struct {
	Path    Path
	Ext     string
	Content string
}

// NewTargetDocument builds a TargetDocument, deriving the extension from the path.
func NewTargetDocument(path Path, content string) TargetDocument {
	return TargetDocument{
		Path:    path,
		Ext:     path.Ext(),
		Content: content,
	}
}
