package query

type OrderDirection byte

const (
	Asc OrderDirection = iota
	Desc
)

func (d OrderDirection) String() string {
	if d == Desc {
		return "DESC"
	}
	return "ASC"
}

type OrderBy struct {
	Column    string
	Direction OrderDirection
}

type (
	// QueryPlan is the validated description of a single SELECT. It is
	// built once by Build and never modified afterwards.
	QueryPlan struct {
		Tables []string
		// may contain "*" or aggregate expressions such as SUM(b)
		Columns  []string
		Distinct bool

		Predicates []Predicate
		Combinator Combinator

		GroupBy string
		OrderBy *OrderBy

		// aggregates found in Columns, in select order, unique by name
		Aggregates []Aggregate
	}
)

func (p *QueryPlan) HasWhere() bool {
	return len(p.Predicates) > 0
}

func (p *QueryPlan) HasGroupBy() bool {
	return p.GroupBy != ""
}

func (p *QueryPlan) HasOrderBy() bool {
	return p.OrderBy != nil
}

// GroupBeforeFilter is true when a predicate refers to an aggregate result,
// in which case grouping has to happen before filtering.
func (p *QueryPlan) GroupBeforeFilter() bool {
	if !p.HasGroupBy() {
		return false
	}
	for _, pred := range p.Predicates {
		if pred.ReferencesAggregate() {
			return true
		}
	}
	return false
}

// ScalarAggregate returns the single aggregate of an ungrouped query.
func (p *QueryPlan) ScalarAggregate() (Aggregate, bool) {
	if p.HasGroupBy() || len(p.Aggregates) != 1 {
		return Aggregate{}, false
	}
	return p.Aggregates[0], true
}
