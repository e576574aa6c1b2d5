package bean

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"propath/internal/match"
	"propath/node"
	"propath/options"
	"propath/segment"
)

// slot is a value reached during traversal together with the way to
// replace it in its owner.
type slot struct {
	value reflect.Value
	// typ is the declared type of the position, wtyp the type written to it.
	typ  reflect.Type
	wtyp reflect.Type
	// write stores a value assignable to wtyp; nil when the position
	// cannot be written.
	write func(reflect.Value) error
}

func rootSlot(root any) slot {
	v := reflect.ValueOf(root)

	s := slot{value: v}
	if v.IsValid() {
		s.typ, s.wtyp = v.Type(), v.Type()
	}

	return s
}

// resolution is the state of a single operation. It is created per call
// and never shared.
type resolution struct {
	u       *Util
	op      string
	path    string
	mode    options.Mode
	adapter node.Adapter
	log     *slog.Logger

	forced   bool
	declared bool
	// mutating operations keep the write-backs of copied values
	mutating bool

	seg         segment.Segment
	first, last bool

	commits []func() error
}

func (u *Util) begin(op, path string, mode options.Mode) *resolution {
	r := &resolution{
		u:        u,
		op:       op,
		path:     path,
		mode:     mode,
		log:      u.logger.With("op", op, "path", path),
		forced:   mode.Forced(),
		declared: mode.Declared(),
		first:    true,
	}

	switch op {
	case OpSet:
		r.mutating = true
	case OpGet:
		r.mutating = r.forced
	default:
		r.forced = false
	}

	r.adapter = node.Adapter{
		Converter: u.converter,
		Factory:   u.factory,
		Observe:   r.observe,
	}

	return r
}

func (r *resolution) observe(action string, t reflect.Type) {
	r.log.Debug(action, "segment", r.seg.String(), "type", typeName(t))
}

// enter returns the container held by s ready to be operated on. Structs
// and arrays that cannot be addressed are copied; for mutating operations
// the copy is stored back into s once the operation succeeds.
func (r *resolution) enter(s slot) reflect.Value {
	v := node.Indirect(s.value)
	if !v.IsValid() || v.CanAddr() {
		return v
	}

	if v.Kind() != reflect.Struct && v.Kind() != reflect.Array {
		return v
	}

	cp := reflect.New(v.Type()).Elem()
	cp.Set(v)

	if r.mutating && s.write != nil {
		r.commits = append(r.commits, func() error {
			return r.assign(s, cp)
		})
	}

	return node.Indirect(cp)
}

// assign converts x to the write type of s and stores it.
func (r *resolution) assign(s slot, x reflect.Value) error {
	if s.write == nil {
		return fmt.Errorf("%w: %s", ErrNotWritable, typeName(s.typ))
	}

	cx, err := r.u.converter.Convert(x, s.wtyp)
	if err != nil {
		return err
	}

	return s.write(cx)
}

// replacer lets node replace the container held by s. A root slot has no
// writer; its container is replaced in place when the root reaches it
// through a pointer.
func (r *resolution) replacer(s slot) func(reflect.Value) error {
	if s.write != nil {
		return func(x reflect.Value) error {
			return r.assign(s, x)
		}
	}

	dst := settable(s.value)
	if !dst.IsValid() {
		return nil
	}

	return func(x reflect.Value) error {
		cx, err := r.u.converter.Convert(x, dst.Type())
		if err != nil {
			return err
		}

		dst.Set(cx)

		return nil
	}
}

// settable returns the innermost settable value on the pointer and
// interface chain from v, or an invalid value.
func settable(v reflect.Value) reflect.Value {
	var dst reflect.Value

	for v.IsValid() {
		if v.CanSet() {
			dst = v
		}

		if k := v.Kind(); k != reflect.Pointer && k != reflect.Interface || v.IsNil() {
			break
		}

		v = v.Elem()
	}

	return dst
}

// container wraps the value of s for indexed access.
func (r *resolution) container(s slot) node.Container {
	return node.Container{Value: r.enter(s), Replace: r.replacer(s)}
}

// commit runs the collected write-backs, innermost first.
func (r *resolution) commit() error {
	for i := len(r.commits) - 1; i >= 0; i-- {
		if err := r.commits[i](); err != nil {
			return err
		}
	}

	r.commits = nil

	return nil
}

// fail wraps err into a PathError for the current segment.
func (r *resolution) fail(err error) error {
	var pe *PathError
	if errors.As(err, &pe) {
		return err
	}

	pe = &PathError{
		Op:      r.op,
		Path:    r.path,
		Segment: r.seg.String(),
		Err:     classify(err),
	}

	var nf *notFound
	if errors.As(err, &nf) {
		pe.Suggestions = match.Suggest(nf.name, nf.known)
	}

	r.log.Debug("failed", "segment", pe.Segment, "error", pe.Err)

	return pe
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}

	return t.String()
}
