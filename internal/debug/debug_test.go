package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssertPassing(t *testing.T) {
	assert.NotPanics(t, func() {
		Assert(true, "never fires")
		AssertIndex(0, 1)
		AssertIndex(2, 3)
	})
}

func TestAssertFailing(t *testing.T) {
	if !Enabled {
		assert.NotPanics(t, func() {
			Assert(false, "compiled out")
			AssertIndex(5, 3)
		})
		return
	}
	assert.PanicsWithValue(t, "linmath: boom", func() { Assert(false, "boom") })
	assert.PanicsWithValue(t, "linmath: index -1 out of range [0, 4)", func() { AssertIndex(-1, 4) })
}
