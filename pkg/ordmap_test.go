package pkg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMap_PreservesInsertionOrder(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("c", 3)
	m.Set("a", 1)
	m.Set("b", 2)

	assert.Equal(t, []string{"c", "a", "b"}, m.Keys())
	assert.Equal(t, 3, m.Len())
}

func TestOrderedMap_SetExistingKeyKeepsPosition(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 10)

	assert.Equal(t, []string{"a", "b"}, m.Keys())

	value, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 10, value)
}

func TestOrderedMap_GetMissingKey(t *testing.T) {
	m := NewOrderedMap[string, int]()

	_, ok := m.Get("missing")
	assert.False(t, ok)
}

func TestOrderedMap_RangeStopsOnError(t *testing.T) {
	m := NewOrderedMap[int, string]()
	m.Set(1, "one")
	m.Set(2, "two")
	m.Set(3, "three")

	errStop := errors.New("stop")
	visited := []int{}

	err := m.Range(func(key int, _ string) error {
		visited = append(visited, key)
		if key == 2 {
			return errStop
		}

		return nil
	})

	require.ErrorIs(t, err, errStop)
	assert.Equal(t, []int{1, 2}, visited)
}
