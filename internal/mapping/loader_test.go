package mapping

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScript = `
version: "1"
mode: forced
set:
  - path: order.items[0].price
    value: 10
    mode: [forced, silent]
  - path: order.note
    value: null
expect:
  - path: order.items[0].price
    value: 10
  - path: order.coupon
    absent: true
`

func TestParse(t *testing.T) {
	t.Parallel()

	s, err := Parse([]byte(sampleScript))
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, "1", s.Version)
	assert.Equal(t, StringOrArray{"forced"}, s.Mode)

	require.Len(t, s.Set, 2)
	assert.Equal(t, "order.items[0].price", s.Set[0].Path)
	assert.Equal(t, 10, s.Set[0].Value)
	assert.Equal(t, StringOrArray{"forced", "silent"}, s.Set[0].Mode)
	assert.Equal(t, 5, s.Set[0].Line)

	assert.Nil(t, s.Set[1].Value)
	assert.True(t, s.Set[1].HasValue())
	assert.Equal(t, 8, s.Set[1].Line)

	require.Len(t, s.Expect, 2)
	assert.Equal(t, 11, s.Expect[0].Line)
	assert.True(t, s.Expect[1].Absent)
	assert.False(t, s.Expect[1].HasValue())
	assert.True(t, s.Expect[1].Mode.IsEmpty())
}

func TestParseDefaults(t *testing.T) {
	t.Parallel()

	s, err := Parse([]byte("set: []\n"))
	require.NoError(t, err)

	assert.Equal(t, SupportedVersion, s.Version)
	assert.Empty(t, s.Set)
	assert.True(t, s.Mode.IsEmpty())
}

func TestParseModeForms(t *testing.T) {
	t.Parallel()

	s, err := Parse([]byte(`mode: "forced|declared"`))
	require.NoError(t, err)
	assert.True(t, s.Mode.Contains("forced|declared"))

	m, err := s.Mode.Mode()
	require.NoError(t, err)
	assert.True(t, m.Forced())
	assert.True(t, m.Declared())

	s, err = Parse([]byte(`mode: [silent]`))
	require.NoError(t, err)
	assert.Equal(t, StringOrArray{"silent"}, s.Mode)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"malformed", "set: [", "failed to parse script YAML"},
		{"mode mapping", "mode: {forced: true}", "expected string or array, got mapping"},
		{"scalar step", "set: [order.id]", "expected step mapping, got scalar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	data, err := Marshal(&Script{Version: "1", Mode: StringOrArray{"forced"}})
	require.NoError(t, err)
	assert.Equal(t, "version: \"1\"\nmode: forced\n", string(data))

	data, err = Marshal(&Script{
		Version: "1",
		Set:     []Step{{Path: "a.b", Value: 0, Mode: StringOrArray{"forced", "silent"}}},
	})
	require.NoError(t, err)
	assert.Contains(t, string(data), "value: 0")
	assert.Contains(t, string(data), "- forced\n")
}

func TestWriteAndLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "script.yaml")

	orig, err := Parse([]byte(sampleScript))
	require.NoError(t, err)
	require.NoError(t, WriteFile(orig, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, orig.Mode, loaded.Mode)
	require.Len(t, loaded.Set, len(orig.Set))
	assert.Equal(t, orig.Set[0].Path, loaded.Set[0].Path)
	assert.Equal(t, orig.Set[0].Value, loaded.Set[0].Value)
	assert.True(t, loaded.Expect[1].Absent)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read script")
}
