package route

import (
	"path"
	"strings"

	"github.com/vango-dev/routegen/internal/errors"
)

// Convention describes how a directory layout maps to routes.
type Convention struct {
	// Name is the selector used on the command line ("pages" or "app").
	Name string

	// Extensions are the recognized source file extensions, with dot.
	Extensions []string

	// Markers are the file stems that resolve to their directory's path.
	Markers []string

	// SkipMarkerDirs skips subdirectories named after a marker.
	SkipMarkerDirs bool
}

// Pages is the flat convention: index.tsx marks a directory route and every
// other .tsx file is a route of its own.
var Pages = Convention{
	Name:       "pages",
	Extensions: []string{".tsx"},
	Markers:    []string{"index"},
}

// App is the nested convention: page and layout files mark a directory
// route. Directories named page or layout are never descended into.
var App = Convention{
	Name:           "app",
	Extensions:     []string{".tsx", ".js"},
	Markers:        []string{"page", "layout"},
	SkipMarkerDirs: true,
}

// Auto selects the convention from the root directory's name.
const Auto = "auto"

// Conventions lists the selectable conventions.
func Conventions() []Convention {
	return []Convention{Pages, App}
}

// Selectors returns the names accepted by ParseConvention, Auto last.
func Selectors() []string {
	names := make([]string, 0, 3)
	for _, c := range Conventions() {
		names = append(names, c.Name)
	}
	return append(names, Auto)
}

func lookup(name string) (Convention, bool) {
	for _, c := range Conventions() {
		if c.Name == name {
			return c, true
		}
	}
	return Convention{}, false
}

// conventionNames renders the names for messages, e.g. "'pages' or 'app'".
func conventionNames() string {
	quoted := make([]string, 0, 2)
	for _, c := range Conventions() {
		quoted = append(quoted, "'"+c.Name+"'")
	}
	return strings.Join(quoted, " or ")
}

// IsMarker reports whether name is one of the convention's leaf markers.
func (c Convention) IsMarker(name string) bool {
	for _, m := range c.Markers {
		if m == name {
			return true
		}
	}
	return false
}

// Stem returns the file name without a recognized extension. ok is false
// when the extension is not recognized.
func (c Convention) Stem(fileName string) (stem string, ok bool) {
	for _, ext := range c.Extensions {
		if strings.HasSuffix(fileName, ext) {
			return strings.TrimSuffix(fileName, ext), true
		}
	}
	return "", false
}

// WithExtensions returns a copy of c recognizing exts instead.
// Extensions without a leading dot get one.
func (c Convention) WithExtensions(exts []string) Convention {
	if len(exts) == 0 {
		return c
	}
	out := c
	out.Extensions = make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out.Extensions = append(out.Extensions, ext)
	}
	return out
}

// ParseConvention returns the convention named by selector. For "auto" the
// convention is inferred from root.
func ParseConvention(selector, root string) (Convention, error) {
	name := strings.ToLower(strings.TrimSpace(selector))
	if name == Auto || name == "" {
		return InferConvention(root)
	}
	if c, ok := lookup(name); ok {
		return c, nil
	}
	return Convention{}, errors.New("E103").
		WithPath(selector).
		WithSuggestion("Use one of: " + strings.Join(Selectors(), ", "))
}

// InferConvention picks the convention named by the last element of root.
func InferConvention(root string) (Convention, error) {
	base := path.Base(strings.TrimRight(strings.ReplaceAll(root, "\\", "/"), "/"))
	if c, ok := lookup(base); ok {
		return c, nil
	}
	return Convention{}, errors.New("E102").
		WithPath(root).
		WithSuggestion("Name the convention explicitly: " + conventionNames())
}

// isBracketed reports whether name is a dynamic segment such as [id].
func isBracketed(name string) bool {
	return len(name) >= 2 && strings.HasPrefix(name, "[") && strings.HasSuffix(name, "]")
}

// dirSegment converts a directory name into a segment.
func dirSegment(name string) Segment {
	if isBracketed(name) {
		return Segment{Kind: Dynamic, Name: name}
	}
	return Segment{Kind: Static, Name: name}
}

// resolveFile maps a file under base to a route. ok is false for files that
// do not produce a route.
func (c Convention) resolveFile(base Path, fileName string) (Path, bool) {
	stem, ok := c.Stem(fileName)
	if !ok || stem == "" {
		return Path{}, false
	}
	if c.IsMarker(stem) {
		return base, true
	}
	return base.Append(dirSegment(stem)), true
}
