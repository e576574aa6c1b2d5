package utils_test

import (
	"fmt"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"propath/utils"
)

func TestIsIndex(t *testing.T) {
	t.Parallel()

	assert.False(t, utils.IsIndex(0, 0))
	assert.True(t, utils.IsIndex(0, 1))
	assert.True(t, utils.IsIndex(4, 5))
	assert.False(t, utils.IsIndex(5, 5))
	assert.False(t, utils.IsIndex(-1, 5))
}

func ExampleUnpack2() {
	k, v := utils.Unpack2(strings.SplitN("order.id=42", "=", 2))
	fmt.Println(k, v)

	k, v = utils.Unpack2(strings.SplitN("flag", "=", 2))
	fmt.Printf("%s %q\n", k, v)

	fmt.Println(utils.Second(path.Split("propath/bean")))
	// Output:
	// order.id 42
	// flag ""
	// bean
}
