package executor

import (
	"slices"

	"github.com/dot5enko/mini-column-sql/manager/query"
	"github.com/dot5enko/mini-column-sql/schema"
)

// OrderBy stable sorts all rows by column. DESC flips the comparison only,
// equal values keep their original relative order in both directions.
func OrderBy(rel *schema.Relation, column string, direction query.OrderDirection) (*schema.Relation, error) {

	values, err := rel.Column(column)
	if err != nil {
		return nil, err
	}

	indices := make([]int, len(values))
	for i := range indices {
		indices[i] = i
	}

	slices.SortStableFunc(indices, func(a, b int) int {
		c := values[a].Compare(values[b])
		if direction == query.Desc {
			return -c
		}
		return c
	})

	return rel.Take(indices), nil
}
