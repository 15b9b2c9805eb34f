package executor

import (
	"log/slog"

	"github.com/dot5enko/mini-column-sql/manager/query"
	"github.com/dot5enko/mini-column-sql/schema"
)

// GroupBy groups rows by the distinct values of key, in first occurrence
// order. The result holds the key column followed by one FN(col) column per
// aggregate.
func GroupBy(rel *schema.Relation, key string, aggregates []query.Aggregate) (*schema.Relation, error) {

	keyValues, err := rel.Column(key)
	if err != nil {
		return nil, err
	}

	sources := make([][]schema.Value, len(aggregates))
	for idx, agg := range aggregates {
		sources[idx], err = sourceColumn(rel, agg)
		if err != nil {
			return nil, err
		}
	}

	groupOf := map[schema.Value]int{}
	keys := []schema.Value{}
	members := [][]int{}

	for row, v := range keyValues {
		groupIdx, seen := groupOf[v]
		if !seen {
			groupIdx = len(keys)
			groupOf[v] = groupIdx
			keys = append(keys, v)
			members = append(members, []int{})
		}
		members[groupIdx] = append(members[groupIdx], row)
	}

	result := schema.NewRelation()
	if err := result.AddColumn(key, keys); err != nil {
		return nil, err
	}

	scratch := make([]schema.Value, 0, len(keyValues))

	for idx, agg := range aggregates {
		out := make([]schema.Value, len(keys))

		for groupIdx, rows := range members {
			scratch = scratch[:0]
			for _, row := range rows {
				scratch = append(scratch, sources[idx][row])
			}

			out[groupIdx], err = Compute(agg.Fn, scratch)
			if err != nil {
				return nil, err
			}
		}

		if err := result.AddColumn(agg.Name(), out); err != nil {
			return nil, err
		}
	}

	slog.Debug("grouped relation", "key", key, "groups", len(keys), "aggregates", len(aggregates))

	return result, nil
}
