package bean

import (
	"errors"
	"strconv"

	"propath/internal/common"
	"propath/internal/diagnostic"
	"propath/options"
)

// Diagnostic codes of Populate and Copy.
const (
	CodePopulateFailed = "populate_failed"
	CodeCopyFailed     = "copy_failed"
	CodeCopySkipped    = "copy_skipped"
)

// Populate writes the entries of data into target. Nested maps descend
// into the same-named properties and lists into their elements, creating
// them as needed. Keys are visited in sorted order. Failing entries do not
// stop the others; their errors are returned together.
func (u *Util) Populate(target any, data map[string]any, mode options.Mode) error {
	var diags diagnostic.Diagnostics

	u.populate(target, "", data, mode.With(options.ModeForced).Without(options.ModeSilent), &diags)

	if mode.Silent() {
		return nil
	}

	return diags.Error()
}

func (u *Util) populate(target any, prefix string, data map[string]any, mode options.Mode, diags *diagnostic.Diagnostics) {
	for _, key := range common.SortedKeys(data) {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		u.populateValue(target, path, data[key], mode, diags)
	}
}

func (u *Util) populateValue(target any, path string, value any, mode options.Mode, diags *diagnostic.Diagnostics) {
	switch v := value.(type) {
	case map[string]any:
		u.populate(target, path, v, mode, diags)

	case []any:
		for i, elem := range v {
			u.populateValue(target, path+"["+strconv.Itoa(i)+"]", elem, mode, diags)
		}

	default:
		if err := u.SetValue(target, path, value, mode); err != nil {
			diags.AddCause(CodePopulateFailed, path, err, suggestions(err)...)
		}
	}
}

func suggestions(err error) []string {
	var pe *PathError
	if errors.As(err, &pe) {
		return pe.Suggestions
	}

	return nil
}
