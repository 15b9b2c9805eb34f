package executor

import (
	"fmt"

	"github.com/dot5enko/mini-column-sql/lists"
	"github.com/dot5enko/mini-column-sql/manager/query"
	"github.com/dot5enko/mini-column-sql/ops"
	"github.com/dot5enko/mini-column-sql/schema"
)

// Filter keeps the rows matching the predicates. Two predicates are
// evaluated separately and their row sets intersected (AND) or united (OR).
func Filter(rel *schema.Relation, predicates []query.Predicate, combinator query.Combinator) (*schema.Relation, error) {

	switch len(predicates) {
	case 0:
		return rel, nil
	case 1:
		rows, err := matchingRows(rel, predicates[0])
		if err != nil {
			return nil, err
		}
		return rel.Take(rows), nil
	case 2:
		first, err := matchingRows(rel, predicates[0])
		if err != nil {
			return nil, err
		}
		second, err := matchingRows(rel, predicates[1])
		if err != nil {
			return nil, err
		}

		var rows []int
		switch combinator {
		case query.And:
			rows = lists.Intersect(first, second, rel.Rows())
		case query.Or:
			rows = lists.Merge(first, second, rel.Rows())
		default:
			return nil, fmt.Errorf("%w, got `%s`", query.ErrUnsupportedCombinator, combinator)
		}
		return rel.Take(rows), nil
	default:
		return nil, fmt.Errorf("%w: %d conditions, at most 2 are supported", query.ErrMalformedPredicate, len(predicates))
	}
}

// matchingRows returns the ascending indices of rows satisfying pred.
func matchingRows(rel *schema.Relation, pred query.Predicate) ([]int, error) {

	left, err := rel.Column(pred.Left)
	if err != nil {
		return nil, err
	}

	out := make([]int, len(left))
	filled := 0

	if pred.Right.IsLiteral {
		cmp := schema.Int(pred.Right.Literal)

		switch pred.Operand {
		case query.EQ:
			filled = ops.CompareValuesAreEqual(left, cmp, out)
		case query.GT:
			filled = ops.CompareValuesAreBigger(left, cmp, false, out)
		case query.GE:
			filled = ops.CompareValuesAreBigger(left, cmp, true, out)
		case query.LT:
			filled = ops.CompareValuesAreSmaller(left, cmp, false, out)
		case query.LE:
			filled = ops.CompareValuesAreSmaller(left, cmp, true, out)
		default:
			return nil, fmt.Errorf("%w `%d`", query.ErrUnknownOperator, pred.Operand)
		}

		return out[:filled], nil
	}

	right, err := rel.Column(pred.Right.Column)
	if err != nil {
		return nil, err
	}

	switch pred.Operand {
	case query.EQ:
		filled = ops.CompareColumnsAreEqual(left, right, out)
	case query.GT:
		filled = ops.CompareColumnsAreBigger(left, right, false, out)
	case query.GE:
		filled = ops.CompareColumnsAreBigger(left, right, true, out)
	case query.LT:
		filled = ops.CompareColumnsAreSmaller(left, right, false, out)
	case query.LE:
		filled = ops.CompareColumnsAreSmaller(left, right, true, out)
	default:
		return nil, fmt.Errorf("%w `%d`", query.ErrUnknownOperator, pred.Operand)
	}

	return out[:filled], nil
}
