package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice_OffsetAndLimit(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{2, 3}, Slice(items, 1, 2))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, Slice(items, 0, NoLimit))
	assert.Equal(t, []int{5}, Slice(items, 4, 10))
}

func TestSlice_CountInvariant(t *testing.T) {
	// Result size must be min(limit, max(0, total-offset)) for every pair.
	items := make([]int, 7)
	for offset := 0; offset <= 9; offset++ {
		for limit := 0; limit <= 9; limit++ {
			want := len(items) - offset
			if want < 0 {
				want = 0
			}
			if limit < want {
				want = limit
			}
			assert.Len(t, Slice(items, offset, limit), want, "offset=%d limit=%d", offset, limit)
		}
	}
}

func TestSlice_OffsetPastEnd(t *testing.T) {
	assert.Empty(t, Slice([]string{"a", "b"}, 5, 3))
}

func TestSlice_ZeroLimit(t *testing.T) {
	assert.Empty(t, Slice([]string{"a", "b"}, 0, 0))
}

func TestSlice_PreservesOrder(t *testing.T) {
	items := []string{"c", "a", "b"}
	assert.Equal(t, []string{"c", "a", "b"}, Slice(items, 0, 3))
}
