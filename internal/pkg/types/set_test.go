package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	t.Run("new set with seed elements", func(t *testing.T) {
		set := NewSet("a", "b", "a")
		assert.Equal(t, 2, set.Len())
		assert.ElementsMatch(t, []string{"a", "b"}, set.ToSlice())
	})

	t.Run("add is idempotent", func(t *testing.T) {
		set := NewSet[string]()
		set.Add("x", "y")
		set.Add("x")
		assert.Equal(t, 2, set.Len())
	})

	t.Run("delete removes elements", func(t *testing.T) {
		set := NewSet(1, 2, 3)
		set.Delete(2, 3)
		assert.ElementsMatch(t, []int{1}, set.ToSlice())
	})

	t.Run("iterates all elements", func(t *testing.T) {
		set := NewSet(1, 2, 3)

		var seen []int
		for v := range set.ToIter() {
			seen = append(seen, v)
		}
		assert.ElementsMatch(t, []int{1, 2, 3}, seen)
	})
}
