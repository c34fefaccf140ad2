package domain

import (
	"fmt"

	m "weave.dev/pkg/weave/internal/model"
)

// Renderer converts one source file into a single line of injected text.
// It receives the file's resolved inject path, the file itself, its 0-based
// index within the group, the group size and the target document. Returning
// ok=false drops the line entirely; indices of the other files are unaffected
// because indexing happens before rendering.
type Renderer func(path string, file m.SourceFile, index, total int, target m.TargetDocument) (line string, ok bool)

// DefaultRenderer covers the common web-template pairings. Pairings it does
// not know are skipped rather than rendered as empty lines.
func DefaultRenderer() Renderer {
	return func(path string, file m.SourceFile, _, _ int, target m.TargetDocument) (string, bool) {
		switch target.Ext {
		case "pug", "jade":
			return pugLine(path, file.Ext)
		case "slim", "slm":
			return slimLine(path, file.Ext)
		case "haml":
			return hamlLine(path, file.Ext)
		case "less", "sass", "scss", "css":
			return importLine(path, file.Ext)
		default:
			return htmlLine(path, file.Ext)
		}
	}
}

func htmlLine(path, ext string) (string, bool) {
	switch ext {
	case "js", "mjs":
		return fmt.Sprintf("<script src=%q></script>", path), true
	case "css":
		return fmt.Sprintf("<link rel=\"stylesheet\" href=%q>", path), true
	case "html", "htm":
		return fmt.Sprintf("<link rel=\"import\" href=%q>", path), true
	case "png", "gif", "jpg", "jpeg", "svg", "webp":
		return fmt.Sprintf("<img src=%q>", path), true
	default:
		return "", false
	}
}

func pugLine(path, ext string) (string, bool) {
	switch ext {
	case "js", "mjs":
		return fmt.Sprintf("script(src=%q)", path), true
	case "css":
		return fmt.Sprintf("link(rel=\"stylesheet\", href=%q)", path), true
	default:
		return "", false
	}
}

func slimLine(path, ext string) (string, bool) {
	switch ext {
	case "js", "mjs":
		return fmt.Sprintf("script src=%q", path), true
	case "css":
		return fmt.Sprintf("link rel=\"stylesheet\" href=%q", path), true
	default:
		return "", false
	}
}

func hamlLine(path, ext string) (string, bool) {
	switch ext {
	case "js", "mjs":
		return fmt.Sprintf("%%script{src: %q}", path), true
	case "css":
		return fmt.Sprintf("%%link{rel: \"stylesheet\", href: %q}", path), true
	default:
		return "", false
	}
}

func importLine(path, ext string) (string, bool) {
	switch ext {
	case "css", "less", "sass", "scss":
		return fmt.Sprintf("@import %q;", path), true
	default:
		return "", false
	}
}
