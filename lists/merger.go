package lists

import (
	"github.com/dot5enko/mini-column-sql/bits"
)

// Merge returns the union of two ascending index lists, ascending and
// without duplicates.
func Merge(a, b []int, size int) []int {
	if len(a) == 0 {
		return append([]int{}, b...)
	}
	if len(b) == 0 {
		return append([]int{}, a...)
	}

	aBitset := convertArrayIndicesToBitset(a, size)
	bBitset := convertArrayIndicesToBitset(b, size)

	resultBitset := bits.MergeOR(aBitset, bBitset)

	return resultBitset.ToIndices(make([]int, 0, max(len(a), len(b))))
}
