package options

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

var ErrUnknownMode = errors.New("unknown mode")

// Mode is the set of policy flags a path operation runs with.
type Mode int

const (
	ModeDeclared Mode = 1 << iota // unexported struct members are accessible
	ModeForced                    // missing intermediate structure is created instead of failing
	ModeSilent                    // errors are swallowed, the operation yields its no-op result

	ModeAll  Mode = (1 << iota) - 1 // all flags combined
	ModeNone Mode = 0               // default: exported members only, no creation, errors returned
)

var modeNames = map[string]Mode{
	"declared": ModeDeclared,
	"forced":   ModeForced,
	"silent":   ModeSilent,
	"none":     ModeNone,
}

func (m Mode) Declared() bool { return m&ModeDeclared != 0 }
func (m Mode) Forced() bool   { return m&ModeForced != 0 }
func (m Mode) Silent() bool   { return m&ModeSilent != 0 }

// With returns m with the flags of other added.
func (m Mode) With(other Mode) Mode { return m | other }

// Without returns m with the flags of other cleared.
func (m Mode) Without(other Mode) Mode { return m &^ other }

func (m Mode) String() string {
	if m == ModeNone {
		return "none"
	}

	var parts []string
	if m.Declared() {
		parts = append(parts, "declared")
	}
	if m.Forced() {
		parts = append(parts, "forced")
	}
	if m.Silent() {
		parts = append(parts, "silent")
	}

	return strings.Join(parts, "|")
}

// ParseMode combines flag names ("declared", "forced", "silent", "none")
// into a Mode. Names are case-insensitive; a single name may also hold
// several flags separated by '|' or ','.
func ParseMode(names ...string) (Mode, error) {
	var m Mode

	for _, name := range names {
		for _, part := range strings.FieldsFunc(name, func(r rune) bool { return r == '|' || r == ',' }) {
			flag, ok := modeNames[strings.ToLower(strings.TrimSpace(part))]
			if !ok {
				return ModeNone, fmt.Errorf("%w %q", ErrUnknownMode, part)
			}

			m |= flag
		}
	}

	return m, nil
}

// ModeNames lists the names ParseMode accepts, sorted.
func ModeNames() []string {
	return slices.Sorted(maps.Keys(modeNames))
}
