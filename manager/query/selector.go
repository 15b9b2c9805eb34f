package query

import (
	"fmt"
	"strings"
)

type AggregateFn byte

const (
	Max AggregateFn = iota
	Min
	Count
	Sum
	Avg
)

func (f AggregateFn) String() string {
	switch f {
	case Max:
		return "MAX"
	case Min:
		return "MIN"
	case Count:
		return "COUNT"
	case Sum:
		return "SUM"
	case Avg:
		return "AVG"
	default:
		panic(fmt.Sprintf("unknown aggregate %d", f))
	}
}

func ParseAggregateFn(raw string) (AggregateFn, error) {
	switch strings.ToUpper(raw) {
	case "MAX":
		return Max, nil
	case "MIN":
		return Min, nil
	case "COUNT":
		return Count, nil
	case "SUM":
		return Sum, nil
	case "AVG":
		return Avg, nil
	default:
		return Max, fmt.Errorf("%w `%s`", ErrUnknownAggregate, raw)
	}
}

// Aggregate is one FN(col) item of the select list.
type Aggregate struct {
	Fn     AggregateFn
	Column string
}

// Name is the derived column name, e.g. SUM(b).
func (a Aggregate) Name() string {
	return a.Fn.String() + "(" + a.Column + ")"
}

// ParseAggregate recognises the FN(col) form. Anything without parentheses
// is a plain column and reported with ok == false.
func ParseAggregate(expr string) (agg Aggregate, ok bool, err error) {

	open := strings.IndexByte(expr, '(')
	if open < 0 {
		return Aggregate{}, false, nil
	}

	if !strings.HasSuffix(expr, ")") || open == 0 {
		return Aggregate{}, false, fmt.Errorf("%w `%s`", ErrUnknownAggregate, expr)
	}

	fn, fnErr := ParseAggregateFn(expr[:open])
	if fnErr != nil {
		return Aggregate{}, false, fnErr
	}

	column := expr[open+1 : len(expr)-1]
	if column == "" || strings.ContainsAny(column, "()") {
		return Aggregate{}, false, fmt.Errorf("%w `%s`", ErrUnknownAggregate, expr)
	}

	if column == "*" && fn != Count {
		return Aggregate{}, false, fmt.Errorf("%w: `*` is only allowed in COUNT, got `%s`", ErrSemantic, expr)
	}

	return Aggregate{Fn: fn, Column: column}, true, nil
}
