package schema

// Result is the final row-major output of a query.
type Result struct {
	QueryID string
	Columns []string
	Rows    [][]Value
}

func ResultFromRelation(r *Relation) *Result {
	rows, headings := r.RowForm()
	return &Result{
		Columns: headings,
		Rows:    rows,
	}
}
