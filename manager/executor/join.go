package executor

import (
	"log/slog"

	"github.com/dot5enko/mini-column-sql/schema"
)

// TableSource hands out loaded tables by name.
type TableSource interface {
	GetTable(name string) (*schema.Relation, error)
}

// Join builds the cartesian product of the named tables. Rows are produced
// as nested loops with the first table outermost. A single table is
// returned as is.
func Join(source TableSource, tables []string) (*schema.Relation, error) {

	relations := make([]*schema.Relation, len(tables))
	for idx, name := range tables {
		rel, err := source.GetTable(name)
		if err != nil {
			return nil, err
		}
		relations[idx] = rel
	}

	if len(relations) == 1 {
		return relations[0], nil
	}

	total := 1
	for _, rel := range relations {
		total *= rel.Rows()
	}

	// preallocated output buffers, one per column, in table order
	type target struct {
		table  int
		source []schema.Value
		out    []schema.Value
	}

	targets := []target{}
	for idx, rel := range relations {
		for _, col := range rel.Columns() {
			targets = append(targets, target{
				table:  idx,
				source: col.Values,
				out:    make([]schema.Value, total),
			})
		}
	}

	// mixed radix counter, most significant digit is the first table
	counter := make([]int, len(relations))

	for row := 0; row < total; row++ {
		for _, it := range targets {
			it.out[row] = it.source[counter[it.table]]
		}

		for digit := len(counter) - 1; digit >= 0; digit-- {
			counter[digit]++
			if counter[digit] < relations[digit].Rows() {
				break
			}
			counter[digit] = 0
		}
	}

	result := schema.NewRelation()
	ti := 0
	for _, rel := range relations {
		for _, col := range rel.Columns() {
			if err := result.AddColumn(col.Name, targets[ti].out); err != nil {
				return nil, err
			}
			ti++
		}
	}

	slog.Debug("joined tables", "tables", tables, "rows", total)

	return result, nil
}
