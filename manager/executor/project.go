package executor

import (
	"strings"

	"github.com/dot5enko/mini-column-sql/schema"
)

// Project keeps the requested columns in the requested order. A lone "*"
// keeps the relation unchanged. A column requested twice is kept once.
func Project(rel *schema.Relation, columns []string) (*schema.Relation, error) {

	if len(columns) == 1 && columns[0] == "*" {
		return rel, nil
	}

	result := schema.NewRelation()
	for _, name := range columns {
		if result.HasColumn(name) {
			continue
		}

		values, err := rel.Column(name)
		if err != nil {
			return nil, err
		}

		if err := result.AddColumn(name, values); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Distinct turns rel into rows and drops repeated rows, keeping the first
// occurrence of each.
func Distinct(rel *schema.Relation) *schema.Result {

	rows, headings := rel.RowForm()

	seen := make(map[string]struct{}, len(rows))
	unique := make([][]schema.Value, 0, len(rows))

	var key strings.Builder
	for _, row := range rows {
		key.Reset()
		for _, v := range row {
			key.WriteByte(byte(v.Kind))
			key.WriteString(v.String())
			key.WriteByte(0)
		}

		if _, ok := seen[key.String()]; ok {
			continue
		}
		seen[key.String()] = struct{}{}
		unique = append(unique, row)
	}

	return &schema.Result{
		Columns: headings,
		Rows:    unique,
	}
}
