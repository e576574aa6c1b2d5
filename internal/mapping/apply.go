package mapping

import (
	"fmt"
	"reflect"

	"propath/bean"
	"propath/convert"
	"propath/internal/diagnostic"
	"propath/options"
)

// FailureKind tells which check of a step failed.
type FailureKind int

const (
	FailureSet      FailureKind = iota // the write returned an error
	FailureMissing                     // an expected path does not resolve
	FailurePresent                     // a path expected absent resolves
	FailureMismatch                    // the value differs from the expected one
	FailureRead                        // reading the actual value failed
)

func (k FailureKind) String() string {
	switch k {
	case FailureSet:
		return "set"
	case FailureMissing:
		return "missing"
	case FailurePresent:
		return "present"
	case FailureMismatch:
		return "mismatch"
	case FailureRead:
		return "read"
	}

	return fmt.Sprintf("FailureKind(%d)", int(k))
}

// Failure describes one failed step.
type Failure struct {
	Kind  FailureKind
	Where string
	Path  string
	Want  any
	Got   any
	Err   error
}

func (f Failure) String() string {
	switch f.Kind {
	case FailureMissing:
		return fmt.Sprintf("%s: %s is missing, want %v", f.Where, f.Path, f.Want)
	case FailurePresent:
		return fmt.Sprintf("%s: %s is %v, want absent", f.Where, f.Path, f.Got)
	case FailureMismatch:
		return fmt.Sprintf("%s: %s is %v, want %v", f.Where, f.Path, f.Got, f.Want)
	}

	return fmt.Sprintf("%s: %v", f.Where, f.Err)
}

// Result is the outcome of Apply.
type Result struct {
	// Applied counts the set steps that succeeded.
	Applied int
	// Checked counts the expect steps that held.
	Checked  int
	Failures []Failure
	// Warnings are the validation warnings of the script.
	Warnings []diagnostic.Diagnostic
}

// OK reports whether every step succeeded.
func (r *Result) OK() bool {
	return len(r.Failures) == 0
}

var comparer = convert.New()

// Apply validates s and runs it against doc through u. Validation errors
// are returned as an error and nothing is run; step failures are reported
// in the Result.
func Apply(u *bean.Util, doc any, s *Script) (*Result, error) {
	diags := Validate(s)
	if err := diags.Error(); err != nil {
		return nil, err
	}

	// modes were validated above
	defMode, _ := s.Mode.Mode()
	res := &Result{Warnings: diags.Warnings}

	for i := range s.Set {
		st := &s.Set[i]

		err := u.SetValue(doc, st.Path, st.Value, stepMode(st, defMode))
		if err != nil {
			res.Failures = append(res.Failures, Failure{
				Kind: FailureSet, Where: stepName("set", i, st), Path: st.Path, Want: st.Value, Err: err,
			})

			continue
		}

		res.Applied++
	}

	for i := range s.Expect {
		st := &s.Expect[i]

		if f, ok := check(u, doc, st, stepMode(st, defMode)); !ok {
			f.Where = stepName("expect", i, st)
			res.Failures = append(res.Failures, f)

			continue
		}

		res.Checked++
	}

	return res, nil
}

func stepMode(st *Step, def options.Mode) options.Mode {
	if st.Mode.IsEmpty() {
		return def
	}

	m, _ := st.Mode.Mode()

	return m
}

// check never creates structure, whatever the mode.
func check(u *bean.Util, doc any, st *Step, mode options.Mode) (Failure, bool) {
	mode = mode.Without(options.ModeForced)
	f := Failure{Path: st.Path, Want: st.Value}

	present, err := u.HasValue(doc, st.Path, mode)
	if err != nil {
		f.Kind, f.Err = FailureRead, err
		return f, false
	}

	if !present {
		if st.Absent {
			return f, true
		}

		f.Kind = FailureMissing

		return f, false
	}

	got, err := u.GetValue(doc, st.Path, mode)
	if err != nil {
		f.Kind, f.Err = FailureRead, err
		return f, false
	}

	f.Got = got

	if st.Absent {
		f.Kind = FailurePresent
		return f, false
	}

	if !st.HasValue() || equal(st.Value, got) {
		return f, true
	}

	f.Kind = FailureMismatch

	return f, false
}

// equal compares want with got, converting want to the dynamic type of
// got when they differ.
func equal(want, got any) bool {
	if reflect.DeepEqual(want, got) {
		return true
	}

	if want == nil || got == nil {
		return false
	}

	cv, err := comparer.Convert(reflect.ValueOf(want), reflect.TypeOf(got))
	if err != nil {
		return false
	}

	return reflect.DeepEqual(cv.Interface(), got)
}
