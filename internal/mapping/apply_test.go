package mapping

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propath/bean"
)

func newDoc() map[string]any {
	return map[string]any{
		"order": map[string]any{
			"items": []any{map[string]any{"price": 5}},
		},
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	s, err := Parse([]byte(`
mode: forced
set:
  - path: order.items[0].price
    value: 10
  - path: order.items[1].price
    value: 7
  - path: order.customer.name
    value: Ann
  - path: order.items[x].price
    value: 1
    mode: silent
expect:
  - path: order.items[0].price
    value: "10"
  - path: order.items[1].price
    value: 7
  - path: order.customer.name
    value: Ann
  - path: order.coupon
    absent: true
`))
	require.NoError(t, err)

	doc := newDoc()

	res, err := Apply(bean.New(), doc, s)
	require.NoError(t, err)
	assert.True(t, res.OK(), "failures: %v", res.Failures)
	assert.Equal(t, 4, res.Applied)
	assert.Equal(t, 4, res.Checked)

	want := map[string]any{
		"order": map[string]any{
			"items": []any{
				map[string]any{"price": 10},
				map[string]any{"price": 7},
			},
			"customer": map[string]any{"name": "Ann"},
		},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyFailures(t *testing.T) {
	t.Parallel()

	s := &Script{
		Version: "1",
		Set:     []Step{{Path: "order.missing.deep", Value: 1}},
		Expect: []Step{
			{Path: "order.items[0].price", Value: 6},
			{Path: "order.nope", Value: 1},
			{Path: "order.items[0]", Absent: true},
		},
	}

	res, err := Apply(bean.New(), newDoc(), s)
	require.NoError(t, err)
	assert.False(t, res.OK())
	assert.Equal(t, 0, res.Applied)
	assert.Equal(t, 0, res.Checked)

	kinds := make([]FailureKind, len(res.Failures))
	for i, f := range res.Failures {
		kinds[i] = f.Kind
	}

	assert.Equal(t, []FailureKind{FailureSet, FailureMismatch, FailureMissing, FailurePresent}, kinds)

	require.ErrorIs(t, res.Failures[0].Err, bean.ErrPropertyNotFound)
	assert.Equal(t, "expect[0]: order.items[0].price is 5, want 6", res.Failures[1].String())
	assert.Equal(t, "expect[1]: order.nope is missing, want 1", res.Failures[2].String())
	assert.Equal(t, "present", res.Failures[3].Kind.String())
}

func TestApplyInvalidScript(t *testing.T) {
	t.Parallel()

	res, err := Apply(bean.New(), newDoc(), &Script{Version: "9"})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "unsupported_version")
}

func TestApplyWarnings(t *testing.T) {
	t.Parallel()

	res, err := Apply(bean.New(), newDoc(), &Script{Version: "1"})
	require.NoError(t, err)
	assert.True(t, res.OK())
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "empty_script", res.Warnings[0].Code)
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, equal(10, 10))
	assert.True(t, equal("10", 10))
	assert.True(t, equal(10, 10.0))
	assert.True(t, equal(nil, nil))
	assert.False(t, equal(nil, 0))
	assert.False(t, equal("ten", 10))
	assert.True(t, equal([]any{1, 2}, []any{1, 2}))
}
