package mapping

import (
	"errors"
	"fmt"
	"strings"

	"propath/internal/diagnostic"
	"propath/internal/match"
	"propath/options"
)

// Validate checks a script structurally: version, mode names, paths and
// step shapes. Paths are not resolved against any document.
func Validate(s *Script) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if s == nil {
		res.AddError("script_is_nil", "script is nil", "")
		return res
	}

	if s.Version != SupportedVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported version %q, want %q", s.Version, SupportedVersion), "version")
	}

	validateMode(res, "mode", s.Mode)

	if len(s.Set) == 0 && len(s.Expect) == 0 {
		res.AddWarning("empty_script", "script has no steps", "")
	}

	seen := map[string]string{}

	for i := range s.Set {
		st := &s.Set[i]
		where := stepName("set", i, st)

		validateStep(res, where, st)

		if !st.HasValue() {
			res.AddError("missing_value", "set step has no value", where)
		}

		if st.Absent {
			res.AddError("absent_on_set", "absent is only valid on expect steps", where)
		}

		if prev, dup := seen[st.Path]; dup && st.Path != "" {
			res.AddWarning("duplicate_set", fmt.Sprintf("path %q is already set by %s", st.Path, prev), where)
		}

		seen[st.Path] = where
	}

	for i := range s.Expect {
		st := &s.Expect[i]
		where := stepName("expect", i, st)

		validateStep(res, where, st)

		if st.Absent && st.HasValue() {
			res.AddError("conflicting_expect", "expect step has both absent and value", where)
		}
	}

	return res
}

func validateStep(res *diagnostic.Diagnostics, where string, st *Step) {
	if st.Path == "" {
		res.AddError("empty_path", "step has no path", where)
	} else if err := checkPath(st.Path); err != nil {
		res.AddError("invalid_path", err.Error(), where)
	}

	validateMode(res, where+".mode", st.Mode)
}

// validateMode reports every unknown name, with the known names closest
// to it.
func validateMode(res *diagnostic.Diagnostics, where string, names StringOrArray) {
	for _, name := range names {
		for _, part := range strings.FieldsFunc(name, isModeSeparator) {
			_, err := options.ParseMode(part)
			if errors.Is(err, options.ErrUnknownMode) {
				part = strings.TrimSpace(part)
				res.AddError("unknown_mode", fmt.Sprintf("unknown mode %q", part), where,
					match.Suggest(part, options.ModeNames())...)
			}
		}
	}
}

func isModeSeparator(r rune) bool {
	return r == '|' || r == ','
}

// checkPath rejects unbalanced brackets.
func checkPath(path string) error {
	depth := 0

	for i, c := range path {
		switch c {
		case '[':
			depth++
		case ']':
			depth--
			if depth < 0 {
				return fmt.Errorf("unexpected ']' at offset %d in %q", i, path)
			}
		}
	}

	if depth != 0 {
		return fmt.Errorf("unclosed '[' in %q", path)
	}

	return nil
}

func stepName(section string, i int, st *Step) string {
	if st.Line > 0 {
		return fmt.Sprintf("%s[%d] (line %d)", section, i, st.Line)
	}

	return fmt.Sprintf("%s[%d]", section, i)
}
