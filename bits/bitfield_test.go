package bits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitfieldFromSortedRoundTrip(t *testing.T) {
	indices := []int{0, 3, 63, 64, 65, 200}

	b := NewBitfield(201)
	b.FromSorted(indices)

	assert.Equal(t, indices, b.ToIndices(nil))
	assert.Equal(t, 6, b.Count())
	assert.Equal(t, uint64(1), b.Get(64))
	assert.Equal(t, uint64(0), b.Get(66))
}

func TestBitfieldSetClear(t *testing.T) {
	b := NewBitfield(10)
	assert.False(t, b.Any())

	b.Set(9)
	assert.True(t, b.Any())

	b.Clear(9)
	assert.False(t, b.Any())
}

func TestMerge(t *testing.T) {
	a := NewBitfield(130)
	a.FromSorted([]int{1, 2, 129})

	b := NewBitfield(130)
	b.FromSorted([]int{2, 3, 129})

	assert.Equal(t, []int{2, 129}, MergeAND(a, b).ToIndices(nil))
	assert.Equal(t, []int{1, 2, 3, 129}, MergeOR(a, b).ToIndices(nil))
}
