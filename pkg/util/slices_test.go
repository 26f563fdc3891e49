package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInPlaceFilter(t *testing.T) {
	numbers := []int{1, 2, 3, 4, 5, 6}
	InPlaceFilter(&numbers, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4, 6}, numbers)
}

func TestInPlaceFilterKeepsAll(t *testing.T) {
	words := []string{"a", "b", "c"}
	InPlaceFilter(&words, func(string) bool { return true })
	assert.Equal(t, []string{"a", "b", "c"}, words)
}

func TestInPlaceFilterDropsAll(t *testing.T) {
	words := []string{"a", "b"}
	InPlaceFilter(&words, func(string) bool { return false })
	assert.Empty(t, words)
}

func TestInPlaceFilterEmptySlice(t *testing.T) {
	var empty []int
	InPlaceFilter(&empty, func(int) bool { return true })
	assert.Empty(t, empty)
}
