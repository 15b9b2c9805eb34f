package executor

import (
	"fmt"

	"github.com/dot5enko/mini-column-sql/manager/query"
	"github.com/dot5enko/mini-column-sql/schema"
)

// Compute applies fn to values. COUNT counts rows regardless of their
// content, AVG always divides as floating point. Over zero rows COUNT and
// SUM give 0 and the others give NULL.
func Compute(fn query.AggregateFn, values []schema.Value) (schema.Value, error) {

	switch fn {
	case query.Count:
		return schema.Int(int64(len(values))), nil
	case query.Max, query.Min, query.Sum, query.Avg:
	default:
		return schema.Null(), fmt.Errorf("%w `%d`", query.ErrUnknownAggregate, fn)
	}

	present := 0
	var result schema.Value

	isFloat := false
	var intSum int64
	var floatSum float64

	for _, v := range values {
		if v.IsNull() {
			continue
		}

		switch fn {
		case query.Max:
			if present == 0 || v.Compare(result) > 0 {
				result = v
			}
		case query.Min:
			if present == 0 || v.Compare(result) < 0 {
				result = v
			}
		default:
			if v.Kind == schema.FloatValue {
				isFloat = true
			}
			intSum += v.Int
			floatSum += v.AsFloat()
		}

		present++
	}

	switch fn {
	case query.Sum:
		if isFloat {
			return schema.Float(floatSum), nil
		}
		return schema.Int(intSum), nil
	case query.Avg:
		if present == 0 {
			return schema.Null(), nil
		}
		if isFloat {
			return schema.Float(floatSum / float64(present)), nil
		}
		return schema.Float(float64(intSum) / float64(present)), nil
	default:
		if present == 0 {
			return schema.Null(), nil
		}
		return result, nil
	}
}

// sourceColumn resolves the input of an aggregate. COUNT(*) reads the first
// column of the relation.
func sourceColumn(rel *schema.Relation, agg query.Aggregate) ([]schema.Value, error) {
	if agg.Column == "*" {
		if rel.NumColumns() == 0 {
			return make([]schema.Value, rel.Rows()), nil
		}
		return rel.Columns()[0].Values, nil
	}
	return rel.Column(agg.Column)
}

// ScalarAggregate collapses rel to one row and adds the aggregate computed
// over all of its rows. Other columns keep their first row, or NULL when
// rel is empty.
func ScalarAggregate(rel *schema.Relation, agg query.Aggregate) (*schema.Relation, error) {

	values, err := sourceColumn(rel, agg)
	if err != nil {
		return nil, err
	}

	value, err := Compute(agg.Fn, values)
	if err != nil {
		return nil, err
	}

	result := schema.NewRelation()
	for _, col := range rel.Columns() {
		first := schema.Null()
		if len(col.Values) > 0 {
			first = col.Values[0]
		}
		if err := result.AddColumn(col.Name, []schema.Value{first}); err != nil {
			return nil, err
		}
	}

	if err := result.AddColumn(agg.Name(), []schema.Value{value}); err != nil {
		return nil, err
	}

	return result, nil
}
