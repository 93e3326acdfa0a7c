package route

import "strings"

// Placeholder stands for an arbitrary string value at a dynamic position.
const Placeholder = "${string}"

// Kind tells static routes from parameterized ones.
type Kind int

const (
	// Static routes contain only literal segments.
	Static Kind = iota

	// Dynamic routes contain at least one placeholder segment.
	Dynamic
)

// String returns "static" or "dynamic".
func (k Kind) String() string {
	if k == Dynamic {
		return "dynamic"
	}
	return "static"
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Segment is a single path component.
type Segment struct {
	Kind Kind

	// Name is the literal text for static segments and the original
	// bracketed name (e.g. "[id]") for dynamic ones.
	Name string
}

// Text returns the rendered form of the segment.
func (s Segment) Text() string {
	if s.Kind == Dynamic {
		return Placeholder
	}
	return s.Name
}

// Path is an ordered list of segments. The zero Path is the root "/".
type Path struct {
	Segments []Segment
}

// Root returns the root path.
func Root() Path {
	return Path{}
}

// Append returns a new path with seg added. p is left unchanged.
func (p Path) Append(seg Segment) Path {
	segs := make([]Segment, len(p.Segments), len(p.Segments)+1)
	copy(segs, p.Segments)
	return Path{Segments: append(segs, seg)}
}

// String renders the path, e.g. "/user/${string}".
func (p Path) String() string {
	if len(p.Segments) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, seg := range p.Segments {
		b.WriteByte('/')
		b.WriteString(seg.Text())
	}
	return b.String()
}

// Kind reports the structural kind of the path.
func (p Path) Kind() Kind {
	if p.DynamicCount() > 0 {
		return Dynamic
	}
	return Static
}

// IsDynamic reports whether the path has a dynamic segment.
func (p Path) IsDynamic() bool {
	return p.Kind() == Dynamic
}

// DynamicCount returns the number of dynamic segments.
func (p Path) DynamicCount() int {
	n := 0
	for _, seg := range p.Segments {
		if seg.Kind == Dynamic {
			n++
		}
	}
	return n
}

// Set is the ordered result of one walk. Duplicates are kept.
type Set []Path

// Strings returns the rendered paths in order.
func (s Set) Strings() []string {
	out := make([]string, len(s))
	for i, p := range s {
		out[i] = p.String()
	}
	return out
}

// Partition splits the set by kind, preserving relative order.
func (s Set) Partition() (static, dynamic Set) {
	for _, p := range s {
		if p.IsDynamic() {
			dynamic = append(dynamic, p)
		} else {
			static = append(static, p)
		}
	}
	return static, dynamic
}

// Classify applies the textual rule to an already rendered path: it is
// dynamic iff it contains the placeholder. Prefer Path.Kind when the Path is
// available.
func Classify(rendered string) Kind {
	if strings.Contains(rendered, Placeholder) {
		return Dynamic
	}
	return Static
}

// ParsePath rebuilds a Path from its rendered form. A segment is dynamic
// when it is exactly the placeholder.
func ParsePath(rendered string) Path {
	trimmed := strings.Trim(rendered, "/")
	if trimmed == "" {
		return Root()
	}
	parts := strings.Split(trimmed, "/")
	segs := make([]Segment, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		if part == Placeholder {
			segs = append(segs, Segment{Kind: Dynamic, Name: part})
			continue
		}
		segs = append(segs, Segment{Kind: Static, Name: part})
	}
	return Path{Segments: segs}
}

// ParseSet parses each rendered path with ParsePath.
func ParseSet(rendered []string) Set {
	set := make(Set, 0, len(rendered))
	for _, r := range rendered {
		set = append(set, ParsePath(r))
	}
	return set
}
