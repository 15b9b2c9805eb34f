package schema

import "fmt"

type Column struct {
	Name   string
	Values []Value
}

// Relation is an ordered set of equally sized columns. Operators never
// modify a relation they receive, they always build a new one.
type Relation struct {
	columns []Column
	index   map[string]int
	rows    int
}

func NewRelation() *Relation {
	return &Relation{
		columns: []Column{},
		index:   map[string]int{},
	}
}

// AddColumn appends a column. The first column fixes the row count, every
// following column must match it.
func (r *Relation) AddColumn(name string, values []Value) error {

	if _, exists := r.index[name]; exists {
		return fmt.Errorf("%w `%s`", ErrDuplicateColumn, name)
	}

	if len(r.columns) > 0 && len(values) != r.rows {
		return fmt.Errorf("column `%s` has %d rows, relation has %d", name, len(values), r.rows)
	}

	if len(r.columns) == 0 {
		r.rows = len(values)
	}

	r.index[name] = len(r.columns)
	r.columns = append(r.columns, Column{Name: name, Values: values})

	return nil
}

// MustAddColumn is AddColumn for callers that already guarantee the shape.
func (r *Relation) MustAddColumn(name string, values []Value) {
	if err := r.AddColumn(name, values); err != nil {
		panic(err)
	}
}

func (r *Relation) Column(name string) ([]Value, error) {
	idx, ok := r.index[name]
	if !ok {
		return nil, UnknownColumn(name)
	}
	return r.columns[idx].Values, nil
}

func (r *Relation) HasColumn(name string) bool {
	_, ok := r.index[name]
	return ok
}

func (r *Relation) Columns() []Column {
	return r.columns
}

func (r *Relation) ColumnNames() []string {
	names := make([]string, len(r.columns))
	for i, it := range r.columns {
		names[i] = it.Name
	}
	return names
}

func (r *Relation) NumColumns() int {
	return len(r.columns)
}

func (r *Relation) Rows() int {
	return r.rows
}

func (r *Relation) Row(i int) []Value {
	row := make([]Value, len(r.columns))
	for c, it := range r.columns {
		row[c] = it.Values[i]
	}
	return row
}

// RowForm transposes the relation into row-major tuples.
func (r *Relation) RowForm() (rows [][]Value, headings []string) {
	rows = make([][]Value, r.rows)
	for i := range rows {
		rows[i] = r.Row(i)
	}
	return rows, r.ColumnNames()
}

// Take builds a relation holding the given rows, in the given order, for
// every column.
func (r *Relation) Take(indices []int) *Relation {
	out := NewRelation()
	for _, col := range r.columns {
		values := make([]Value, len(indices))
		for i, idx := range indices {
			values[i] = col.Values[idx]
		}
		out.MustAddColumn(col.Name, values)
	}
	if len(r.columns) == 0 {
		out.rows = len(indices)
	}
	return out
}
