package lists

import (
	"github.com/dot5enko/mini-column-sql/bits"
)

func convertArrayIndicesToBitset(arr []int, size int) bits.Bitfield {

	bitset := bits.NewBitfield(size)
	bitset.FromSorted(arr)

	return bitset
}

// Intersect keeps the row indices present in both ascending lists. size is
// the row count of the relation the indices point into.
func Intersect(a, b []int, size int) []int {
	if len(a) == 0 || len(b) == 0 {
		return []int{}
	}

	aBitset := convertArrayIndicesToBitset(a, size)
	bBitset := convertArrayIndicesToBitset(b, size)

	resultBitset := bits.MergeAND(aBitset, bBitset)

	return resultBitset.ToIndices(make([]int, 0, min(len(a), len(b))))
}

// IntersectSlow is the map based reference used to cross check Intersect.
func IntersectSlow(a, b []int) []int {

	cache := make(map[int]struct{}, len(b))
	for _, v := range b {
		cache[v] = struct{}{}
	}

	out := []int{}
	for _, v := range a {
		if _, ok := cache[v]; ok {
			out = append(out, v)
		}
	}

	return out
}
