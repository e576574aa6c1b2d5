package options_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propath/options"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		names []string
		want  options.Mode
	}{
		{nil, options.ModeNone},
		{[]string{"none"}, options.ModeNone},
		{[]string{"Forced"}, options.ModeForced},
		{[]string{"forced", "declared"}, options.ModeForced | options.ModeDeclared},
		{[]string{"forced|silent"}, options.ModeForced | options.ModeSilent},
		{[]string{"declared, forced ,silent"}, options.ModeAll},
	}

	for _, tt := range tests {
		got, err := options.ParseMode(tt.names...)
		require.NoError(t, err, "names %v", tt.names)
		assert.Equal(t, tt.want, got, "names %v", tt.names)
	}

	_, err := options.ParseMode("forced", "loud")
	assert.EqualError(t, err, `unknown mode "loud"`)
	assert.ErrorIs(t, err, options.ErrUnknownMode)
}

func TestModeNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"declared", "forced", "none", "silent"}, options.ModeNames())
}

func TestModeFlags(t *testing.T) {
	t.Parallel()

	m := options.ModeNone.With(options.ModeForced | options.ModeSilent)
	assert.True(t, m.Forced())
	assert.True(t, m.Silent())
	assert.False(t, m.Declared())

	m = m.Without(options.ModeForced)
	assert.False(t, m.Forced())
	assert.True(t, m.Silent())
}

func TestCategoryHas(t *testing.T) {
	t.Parallel()

	safe := options.CategorySafeNumber | options.CategoryTextNumber
	assert.True(t, safe.Has(options.CategoryTextNumber))
	assert.False(t, safe.Has(options.CategoryTextNumber|options.CategoryDecimal))
	assert.True(t, options.CategoryAll.Has(safe))
	assert.True(t, options.CategoryNone.Has(options.CategoryNone))
}

func ExampleMode_String() {
	fmt.Println(options.ModeNone)
	fmt.Println(options.ModeForced | options.ModeDeclared)
	fmt.Println(options.ModeAll)
	// Output:
	// none
	// declared|forced
	// declared|forced|silent
}

func ExampleCategoryEnum_String() {
	fmt.Println(options.CategoryNone)
	fmt.Println(options.CategoryAll)
	fmt.Println(options.CategoryDecimal | options.CategoryUUID)
	// Output:
	// none
	// all
	// decimal|uuid
}
