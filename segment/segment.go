package segment

import "strings"

// ThisRef is the segment name that refers to the current object itself.
const ThisRef = "*this"

// Segment is one component of a property path.
type Segment struct {
	// Name of the property. Empty when the index applies to the current object.
	Name string
	// Index is the raw text between the trailing brackets, valid when HasIndex is true.
	Index string
	// HasIndex reports whether the segment carries a trailing index.
	HasIndex bool
}

// Path is an ordered list of segments produced by Split.
type Path []Segment

// Split tokenizes path on dots that are not enclosed in brackets and parses
// every piece into a Segment. An empty path yields a single empty segment.
func Split(path string) Path {
	var segments Path

	inside := false
	start := 0

	for i := 0; i < len(path); i++ {
		c := path[i]

		switch {
		case inside:
			if c == ']' {
				inside = false
			}
		case c == '.':
			segments = append(segments, Parse(path[start:i]))
			start = i + 1
		case c == '[':
			inside = true
		}
	}

	return append(segments, Parse(path[start:]))
}

// Parse splits a single piece into its name and trailing index. The index
// starts at the '[' that matches the final ']', so nested brackets stay in
// the index: "m[k[0]]" has the name "m" and the index "k[0]".
func Parse(piece string) Segment {
	last := len(piece) - 1
	if last < 0 || piece[last] != ']' {
		return Segment{Name: piece}
	}

	depth := 0
	for i := last; i >= 0; i-- {
		switch piece[i] {
		case ']':
			depth++
		case '[':
			depth--
			if depth == 0 {
				return Segment{Name: piece[:i], Index: piece[i+1 : last], HasIndex: true}
			}
		}
	}

	return Segment{Name: piece}
}

// Inner parses the name of an indexed segment once more, which exposes the
// next index of a chain such as "grid[1][2]" (name "grid[1]", index "2").
func (s Segment) Inner() (Segment, bool) {
	inner := Parse(s.Name)
	return inner, inner.HasIndex
}

// IsEmpty reports whether the segment has neither a name nor an index.
func (s Segment) IsEmpty() bool {
	return s.Name == "" && !s.HasIndex
}

// IsThis reports whether the segment addresses the current object.
func (s Segment) IsThis() bool {
	return s.Name == ThisRef
}

func (s Segment) String() string {
	if !s.HasIndex {
		return s.Name
	}

	return s.Name + "[" + s.Index + "]"
}

// Last returns the final segment of the path.
func (p Path) Last() Segment {
	if len(p) == 0 {
		return Segment{}
	}

	return p[len(p)-1]
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}

	return strings.Join(parts, ".")
}

// Root returns the first property name of path: the text before the first
// '.' or '['.
func Root(path string) string {
	i := strings.IndexAny(path, ".[")
	if i == -1 {
		return path
	}

	return path[:i]
}
