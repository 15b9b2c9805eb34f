package ops

import "github.com/dot5enko/mini-column-sql/schema"

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// CompareValuesAreEqual writes into out the indices of arr equal to cmp and
// returns how many were written. out must be at least len(arr) long.
func CompareValuesAreEqual(arr []schema.Value, cmp schema.Value, out []int) int {
	n := len(arr)
	filled := 0
	i := 0

	for ; i+3 < n; i += 4 {
		im0 := b2i(arr[i+0].Equal(cmp))
		im1 := b2i(arr[i+1].Equal(cmp))
		im2 := b2i(arr[i+2].Equal(cmp))
		im3 := b2i(arr[i+3].Equal(cmp))

		out[filled] = i + 0
		filled += im0
		out[filled] = i + 1
		filled += im1
		out[filled] = i + 2
		filled += im2
		out[filled] = i + 3
		filled += im3
	}

	// tail
	for ; i < n; i++ {
		if arr[i].Equal(cmp) {
			out[filled] = i
			filled++
		}
	}
	return filled
}

// CompareColumnsAreEqual is CompareValuesAreEqual with a per-row right operand.
func CompareColumnsAreEqual(arr, other []schema.Value, out []int) int {
	filled := 0
	for i := range arr {
		if arr[i].Equal(other[i]) {
			out[filled] = i
			filled++
		}
	}
	return filled
}
