package bean

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"propath/segment"
)

func TestPeel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		piece   string
		name    string
		indexes []string
	}{
		{"items", "items", nil},
		{"items[3]", "items", []string{"3"}},
		{"grid[1][2]", "grid", []string{"1", "2"}},
		{"[0]", "", []string{"0"}},
		{"m[k[0]]", "m", []string{"k[0]"}},
		{"m[a][b][c]", "m", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.piece, func(t *testing.T) {
			t.Parallel()

			name, indexes := peel(segment.Parse(tt.piece))
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.indexes, indexes)
		})
	}
}

func TestDynamic(t *testing.T) {
	t.Parallel()

	anyType := reflect.TypeFor[any]()
	held := reflect.ValueOf(map[string]any{"k": 1}).MapIndex(reflect.ValueOf("k"))

	assert.Equal(t, reflect.TypeFor[int](), dynamic(anyType, held))
	assert.Equal(t, anyType, dynamic(anyType, reflect.Value{}))
	assert.Equal(t, reflect.TypeFor[string](), dynamic(reflect.TypeFor[string](), reflect.ValueOf(1)))
	assert.Equal(t, reflect.TypeFor[int](), dynamic(nil, reflect.ValueOf(1)))
}

func TestCommitOrder(t *testing.T) {
	t.Parallel()

	var order []int

	r := New().begin(OpSet, "a.b", 0)
	r.commits = append(r.commits,
		func() error { order = append(order, 1); return nil },
		func() error { order = append(order, 2); return nil },
	)

	assert.NoError(t, r.commit())
	assert.Equal(t, []int{2, 1}, order)
	assert.Empty(t, r.commits)
}
