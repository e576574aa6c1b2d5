package bean

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"propath/convert"
	"propath/factory"
	"propath/introspect"
	"propath/node"
)

var (
	ErrPropertyNotFound     = errors.New("property not found")
	ErrNilRoot              = errors.New("root is nil")
	ErrUnsupportedContainer = node.ErrUnsupported
	ErrInvalidIndexFormat   = node.ErrInvalidIndex
	ErrIndexBounds          = node.ErrIndexBounds
	ErrNotWritable          = node.ErrNotWritable
	ErrTypeConversion       = convert.ErrTypeConversion
	ErrInstantiation        = factory.ErrInstantiation
)

// Operation names reported by PathError.
const (
	OpGet  = "get"
	OpSet  = "set"
	OpHas  = "has"
	OpType = "type"
)

// PathError records a failed operation on a path and the segment it
// failed at.
type PathError struct {
	Op      string
	Path    string
	Segment string
	Err     error
	// Suggestions are known property names close to the missing one.
	Suggestions []string
}

func (e *PathError) Error() string {
	var b strings.Builder

	b.WriteString(e.Op)
	b.WriteString(" ")
	b.WriteString(strconv.Quote(e.Path))

	if e.Segment != "" && e.Segment != e.Path {
		b.WriteString(" at ")
		b.WriteString(strconv.Quote(e.Segment))
	}

	b.WriteString(": ")
	b.WriteString(e.Err.Error())

	if len(e.Suggestions) > 0 {
		b.WriteString(" (did you mean ")
		b.WriteString(strings.Join(e.Suggestions, ", "))
		b.WriteString("?)")
	}

	return b.String()
}

func (e *PathError) Unwrap() error { return e.Err }

// notFound reports name as missing, with the names known to the container.
type notFound struct {
	name  string
	known []string
}

func (e *notFound) Error() string {
	return fmt.Sprintf("%s: %s", ErrPropertyNotFound, strconv.Quote(e.name))
}

func (e *notFound) Unwrap() error { return ErrPropertyNotFound }

// classify maps collaborator errors onto the package sentinels.
func classify(err error) error {
	switch {
	case errors.Is(err, introspect.ErrNotReadable):
		return fmt.Errorf("%w: %w", ErrPropertyNotFound, err)
	case errors.Is(err, introspect.ErrNotWritable), errors.Is(err, introspect.ErrNotAddressable):
		if !errors.Is(err, ErrNotWritable) {
			return fmt.Errorf("%w: %w", ErrNotWritable, err)
		}
	}

	return err
}

// absent reports errors that mean "no such value" to HasValue.
func absent(err error) bool {
	return errors.Is(err, ErrPropertyNotFound) ||
		errors.Is(err, ErrIndexBounds) ||
		errors.Is(err, ErrUnsupportedContainer) ||
		errors.Is(err, ErrNilRoot)
}
