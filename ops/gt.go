package ops

import "github.com/dot5enko/mini-column-sql/schema"

func CompareValuesAreBigger(arr []schema.Value, cmp schema.Value, orEqual bool, out []int) int {
	threshold := 0
	if orEqual {
		threshold = -1
	}

	filled := 0
	for i, v := range arr {
		if v.Compare(cmp) > threshold {
			out[filled] = i
			filled++
		}
	}
	return filled
}

func CompareColumnsAreBigger(arr, other []schema.Value, orEqual bool, out []int) int {
	threshold := 0
	if orEqual {
		threshold = -1
	}

	filled := 0
	for i := range arr {
		if arr[i].Compare(other[i]) > threshold {
			out[filled] = i
			filled++
		}
	}
	return filled
}
