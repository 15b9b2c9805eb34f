package query

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax   = errors.New("syntax error")
	ErrSemantic = errors.New("semantic error")

	ErrMissingTerminator    = fmt.Errorf("%w: query must end with `;`", ErrSyntax)
	ErrMalformedPredicate   = fmt.Errorf("%w: malformed WHERE clause", ErrSyntax)
	ErrMalformedGroupBy     = fmt.Errorf("%w: exactly one column is supported in GROUP BY", ErrSyntax)
	ErrMalformedOrderBy     = fmt.Errorf("%w: exactly one column is supported in ORDER BY", ErrSyntax)
	ErrEmptyTableList       = fmt.Errorf("%w: no tables mentioned in query", ErrSyntax)
	ErrEmptyColumnList      = fmt.Errorf("%w: no columns or aggregation selected", ErrSyntax)
	ErrInvalidDistinctOrder = fmt.Errorf("%w: DISTINCT with ORDER BY on a column that is not selected", ErrSyntax)
	ErrDuplicateClause      = fmt.Errorf("%w: clause used more than once", ErrSyntax)
	ErrUnexpectedToken      = fmt.Errorf("%w: unexpected token", ErrSyntax)

	ErrInvalidGroupProjection           = fmt.Errorf("%w: selected columns other than the grouped one must be aggregated", ErrSemantic)
	ErrMultipleAggregatesWithoutGroupBy = fmt.Errorf("%w: only one aggregation allowed when GROUP BY is not used", ErrSemantic)
	ErrUnsupportedCombinator            = fmt.Errorf("%w: only AND / OR may join two conditions", ErrSemantic)
	ErrUnknownAggregate                 = fmt.Errorf("%w: unknown aggregate function", ErrSemantic)
	ErrUnknownOperator                  = fmt.Errorf("%w: unknown comparison operator", ErrSemantic)
)
