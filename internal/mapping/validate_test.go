package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propath/internal/diagnostic"
)

func codes(ds []diagnostic.Diagnostic) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Code
	}

	return out
}

func TestValidate_ValidScript(t *testing.T) {
	t.Parallel()

	s, err := Parse([]byte(sampleScript))
	require.NoError(t, err)

	res := Validate(s)
	assert.True(t, res.IsValid(), "unexpected errors: %v", res.Errors)
	assert.Empty(t, res.Warnings)
	assert.NoError(t, res.Error())
}

func TestValidate_NilScript(t *testing.T) {
	t.Parallel()

	res := Validate(nil)
	assert.Equal(t, []string{"script_is_nil"}, codes(res.Errors))
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		script Script
		want   []string
	}{
		{
			name:   "unsupported version",
			script: Script{Version: "2", Expect: []Step{{Path: "a"}}},
			want:   []string{"unsupported_version"},
		},
		{
			name:   "empty path",
			script: Script{Version: "1", Set: []Step{{Value: 1}}},
			want:   []string{"empty_path"},
		},
		{
			name:   "unbalanced brackets",
			script: Script{Version: "1", Expect: []Step{{Path: "a[b"}, {Path: "a]"}}},
			want:   []string{"invalid_path", "invalid_path"},
		},
		{
			name:   "missing value",
			script: Script{Version: "1", Set: []Step{{Path: "a"}}},
			want:   []string{"missing_value"},
		},
		{
			name:   "absent on set",
			script: Script{Version: "1", Set: []Step{{Path: "a", Value: 1, Absent: true}}},
			want:   []string{"absent_on_set"},
		},
		{
			name:   "conflicting expect",
			script: Script{Version: "1", Expect: []Step{{Path: "a", Value: 1, Absent: true}}},
			want:   []string{"conflicting_expect"},
		},
		{
			name: "unknown step mode",
			script: Script{Version: "1", Set: []Step{
				{Path: "a", Value: 1, Mode: StringOrArray{"forced|lod"}},
			}},
			want: []string{"unknown_mode"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Validate(&tt.script)
			assert.Equal(t, tt.want, codes(res.Errors))
		})
	}
}

func TestValidate_ModeSuggestions(t *testing.T) {
	t.Parallel()

	res := Validate(&Script{Version: "1", Mode: StringOrArray{"forcd"}, Expect: []Step{{Path: "a"}}})
	require.Len(t, res.Errors, 1)

	d := res.Errors[0]
	assert.Equal(t, "unknown_mode", d.Code)
	assert.Equal(t, "mode", d.Path)
	assert.Equal(t, []string{"forced"}, d.Suggestions)
	assert.Equal(t, `mode: [unknown_mode] unknown mode "forcd" (did you mean forced?)`, d.String())

	res = Validate(&Script{Version: "1", Set: []Step{{Path: "a", Value: 1, Mode: StringOrArray{"lod"}}}})
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "set[0].mode", res.Errors[0].Path)
	assert.Empty(t, res.Errors[0].Suggestions)
}

func TestValidate_Warnings(t *testing.T) {
	t.Parallel()

	res := Validate(&Script{Version: "1"})
	assert.True(t, res.IsValid())
	assert.Equal(t, []string{"empty_script"}, codes(res.Warnings))

	res = Validate(&Script{Version: "1", Set: []Step{
		{Path: "a", Value: 1},
		{Path: "a", Value: 2},
	}})
	assert.True(t, res.IsValid())
	require.Equal(t, []string{"duplicate_set"}, codes(res.Warnings))
	assert.Equal(t, `path "a" is already set by set[0]`, res.Warnings[0].Message)
	assert.Equal(t, "set[1]", res.Warnings[0].Path)
}

func TestValidate_LineInPath(t *testing.T) {
	t.Parallel()

	s, err := Parse([]byte("set:\n  - path: a[\n    value: 1\n"))
	require.NoError(t, err)

	res := Validate(s)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "set[0] (line 2)", res.Errors[0].Path)
}
