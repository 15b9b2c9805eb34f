package query

import (
	"fmt"
	"slices"
	"strings"
)

// Parse checks the terminator, tokenizes the query and builds its plan.
func Parse(sql string) (*QueryPlan, error) {

	trimmed := strings.TrimSpace(sql)
	if !strings.HasSuffix(trimmed, ";") {
		return nil, ErrMissingTerminator
	}

	clauses, tokenizeErr := Tokenize(strings.TrimSuffix(trimmed, ";"))
	if tokenizeErr != nil {
		return nil, tokenizeErr
	}

	return Build(clauses)
}

// Build turns tokenized clauses into a validated plan. Clauses are matched
// by their leading keyword wherever they appear.
func Build(clauses [][]string) (*QueryPlan, error) {

	plan := &QueryPlan{
		Tables:  []string{},
		Columns: []string{},
	}
	seen := map[string]bool{}

	for _, clause := range clauses {
		if len(clause) == 0 {
			continue
		}

		head := clause[0]
		if seen[head] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateClause, head)
		}
		seen[head] = true

		var clauseErr error

		switch head {
		case "SELECT":
			rest := clause[1:]
			if len(rest) > 0 && rest[0] == "DISTINCT" {
				plan.Distinct = true
				rest = rest[1:]
			}
			plan.Columns = append(plan.Columns, rest...)
		case "FROM":
			plan.Tables = append(plan.Tables, clause[1:]...)
		case "WHERE":
			clauseErr = plan.fillWhere(clause[1:])
		case "GROUP":
			clauseErr = plan.fillGroupBy(clause[1:])
		case "ORDER":
			clauseErr = plan.fillOrderBy(clause[1:])
		default:
			clauseErr = fmt.Errorf("%w `%s`", ErrUnexpectedToken, head)
		}

		if clauseErr != nil {
			return nil, clauseErr
		}
	}

	if len(plan.Tables) == 0 {
		return nil, ErrEmptyTableList
	}

	if len(plan.Columns) == 0 {
		return nil, ErrEmptyColumnList
	}

	if plan.Distinct && plan.HasOrderBy() && !slices.Contains(plan.Columns, plan.OrderBy.Column) {
		return nil, fmt.Errorf("%w: `%s`", ErrInvalidDistinctOrder, plan.OrderBy.Column)
	}

	if aggErr := plan.fillAggregates(); aggErr != nil {
		return nil, aggErr
	}

	if validateErr := plan.validateProjection(); validateErr != nil {
		return nil, validateErr
	}

	return plan, nil
}

func (p *QueryPlan) fillWhere(tokens []string) error {

	switch len(tokens) {
	case 3:
		pred, err := parsePredicate(tokens)
		if err != nil {
			return err
		}
		p.Predicates = []Predicate{pred}
	case 7:
		switch tokens[3] {
		case "AND":
			p.Combinator = And
		case "OR":
			p.Combinator = Or
		default:
			return fmt.Errorf("%w, got `%s`", ErrUnsupportedCombinator, tokens[3])
		}

		first, err := parsePredicate(tokens[:3])
		if err != nil {
			return err
		}
		second, err := parsePredicate(tokens[4:])
		if err != nil {
			return err
		}
		p.Predicates = []Predicate{first, second}
	default:
		return fmt.Errorf("%w: `%s`", ErrMalformedPredicate, strings.Join(tokens, " "))
	}

	return nil
}

func (p *QueryPlan) fillGroupBy(tokens []string) error {
	if len(tokens) == 0 || tokens[0] != "BY" {
		return fmt.Errorf("%w: GROUP must be followed by BY", ErrSyntax)
	}

	columns := tokens[1:]
	if len(columns) != 1 {
		return ErrMalformedGroupBy
	}

	p.GroupBy = columns[0]
	return nil
}

func (p *QueryPlan) fillOrderBy(tokens []string) error {
	if len(tokens) == 0 || tokens[0] != "BY" {
		return fmt.Errorf("%w: ORDER must be followed by BY", ErrSyntax)
	}

	rest := tokens[1:]
	order := &OrderBy{Direction: Asc}

	switch len(rest) {
	case 1:
		order.Column = rest[0]
	case 2:
		order.Column = rest[0]
		switch rest[1] {
		case "ASC":
			order.Direction = Asc
		case "DESC":
			order.Direction = Desc
		default:
			return fmt.Errorf("%w: unexpected `%s`", ErrMalformedOrderBy, rest[1])
		}
	default:
		return ErrMalformedOrderBy
	}

	p.OrderBy = order
	return nil
}

func (p *QueryPlan) fillAggregates() error {

	p.Aggregates = []Aggregate{}
	names := map[string]bool{}

	for _, col := range p.Columns {
		agg, ok, err := ParseAggregate(col)
		if err != nil {
			return err
		}
		if !ok || names[agg.Name()] {
			continue
		}
		names[agg.Name()] = true
		p.Aggregates = append(p.Aggregates, agg)
	}

	return nil
}

// validateProjection enforces the select list rules: under GROUP BY every
// column but the grouped one is aggregated, without it at most one
// aggregate may appear.
func (p *QueryPlan) validateProjection() error {

	if !p.HasGroupBy() {
		if len(p.Aggregates) > 1 {
			return ErrMultipleAggregatesWithoutGroupBy
		}
		return nil
	}

	for _, col := range p.Columns {
		if col == p.GroupBy {
			continue
		}
		if _, ok, _ := ParseAggregate(col); !ok {
			return fmt.Errorf("%w: `%s`", ErrInvalidGroupProjection, col)
		}
	}

	return nil
}
