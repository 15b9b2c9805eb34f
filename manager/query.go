package manager

import (
	"errors"
	"log/slog"

	"github.com/dot5enko/mini-column-sql/manager/executor"
	"github.com/dot5enko/mini-column-sql/manager/query"
	"github.com/dot5enko/mini-column-sql/schema"
	"github.com/google/uuid"
)

var (
	ErrNotLoaded = errors.New("database is not loaded")
)

// Query parses and runs a single statement.
func (m *Manager) Query(sql string) (*schema.Result, error) {

	plan, parseErr := query.Parse(sql)
	if parseErr != nil {
		return nil, parseErr
	}

	return m.Execute(plan)
}

// Execute runs a built plan:
// join, group (early, when a predicate reads an aggregate), filter, group,
// order, scalar aggregate, project, distinct.
func (m *Manager) Execute(plan *query.QueryPlan) (*schema.Result, error) {

	if m.Meta == nil {
		return nil, ErrNotLoaded
	}

	queryID := uuid.New().String()
	log := slog.With("query_id", queryID)

	current, joinErr := executor.Join(m.Meta, plan.Tables)
	if joinErr != nil {
		return nil, joinErr
	}
	log.Debug("join done", "tables", plan.Tables, "rows", current.Rows())

	var err error

	groupFirst := plan.GroupBeforeFilter()
	if groupFirst {
		current, err = executor.GroupBy(current, plan.GroupBy, plan.Aggregates)
		if err != nil {
			return nil, err
		}
		log.Debug("group by done before filtering", "column", plan.GroupBy, "rows", current.Rows())
	}

	if plan.HasWhere() {
		current, err = executor.Filter(current, plan.Predicates, plan.Combinator)
		if err != nil {
			return nil, err
		}
		log.Debug("filter done", "predicates", len(plan.Predicates), "combinator", plan.Combinator.String(), "rows", current.Rows())
	}

	if plan.HasGroupBy() && !groupFirst {
		current, err = executor.GroupBy(current, plan.GroupBy, plan.Aggregates)
		if err != nil {
			return nil, err
		}
		log.Debug("group by done", "column", plan.GroupBy, "rows", current.Rows())
	}

	if plan.HasOrderBy() {
		current, err = executor.OrderBy(current, plan.OrderBy.Column, plan.OrderBy.Direction)
		if err != nil {
			return nil, err
		}
		log.Debug("order by done", "column", plan.OrderBy.Column, "direction", plan.OrderBy.Direction.String())
	}

	if agg, ok := plan.ScalarAggregate(); ok {
		current, err = executor.ScalarAggregate(current, agg)
		if err != nil {
			return nil, err
		}
		log.Debug("scalar aggregate done", "aggregate", agg.Name())
	}

	current, err = executor.Project(current, plan.Columns)
	if err != nil {
		return nil, err
	}

	var result *schema.Result
	if plan.Distinct {
		result = executor.Distinct(current)
		log.Debug("distinct done", "rows", len(result.Rows))
	} else {
		result = schema.ResultFromRelation(current)
	}

	result.QueryID = queryID

	log.Info("query executed", "rows", len(result.Rows), "columns", len(result.Columns))

	return result, nil
}
