package manager

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dot5enko/mini-column-sql/manager/query"
	"github.com/dot5enko/mini-column-sql/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `<begin_table>
T
a
b
<end_table>
<begin_table>
P
c
d
<end_table>
`

func newLoadedManager(t *testing.T) *Manager {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "metadata.txt"), []byte(testCatalog), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "T.csv"), []byte("1,10\n2,20\n1,30\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "P.csv"), []byte("7,1\n8,2\n"), 0o644))

	m := New(ManagerConfig{PathToStorage: dir})
	require.NoError(t, m.Load(context.Background()))

	return m
}

func rows(values ...[]int64) [][]schema.Value {
	out := make([][]schema.Value, len(values))
	for i, it := range values {
		out[i] = schema.IntsToValues(it)
	}
	return out
}

func TestQueryScenarios(t *testing.T) {
	m := newLoadedManager(t)

	cases := []struct {
		name    string
		sql     string
		columns []string
		rows    [][]schema.Value
	}{
		{
			name:    "group by sum",
			sql:     "SELECT a, SUM(b) FROM T GROUP BY a;",
			columns: []string{"a", "SUM(b)"},
			rows:    rows([]int64{1, 40}, []int64{2, 20}),
		},
		{
			name:    "where literal",
			sql:     "SELECT * FROM T WHERE a = 1;",
			columns: []string{"a", "b"},
			rows:    rows([]int64{1, 10}, []int64{1, 30}),
		},
		{
			name:    "distinct",
			sql:     "SELECT DISTINCT a FROM T;",
			columns: []string{"a"},
			rows:    rows([]int64{1}, []int64{2}),
		},
		{
			name:    "order by desc",
			sql:     "SELECT a FROM T ORDER BY b DESC;",
			columns: []string{"a"},
			rows:    rows([]int64{1}, []int64{2}, []int64{1}),
		},
		{
			name:    "scalar aggregate",
			sql:     "SELECT SUM(b) FROM T;",
			columns: []string{"SUM(b)"},
			rows:    rows([]int64{60}),
		},
		{
			name:    "count star",
			sql:     "select count(*) from T where b > 10;",
			columns: []string{"COUNT(*)"},
			rows:    rows([]int64{2}),
		},
		{
			name:    "join with column predicate",
			sql:     "SELECT a, c FROM T, P WHERE a = d;",
			columns: []string{"a", "c"},
			rows:    rows([]int64{1, 7}, []int64{2, 8}, []int64{1, 7}),
		},
		{
			name:    "aggregate in where groups first",
			sql:     "SELECT a, SUM(b) FROM T WHERE SUM(b) > 25 GROUP BY a;",
			columns: []string{"a", "SUM(b)"},
			rows:    rows([]int64{1, 40}),
		},
		{
			name:    "group then order",
			sql:     "SELECT a, COUNT(b) FROM T GROUP BY a ORDER BY a DESC;",
			columns: []string{"a", "COUNT(b)"},
			rows:    rows([]int64{2, 1}, []int64{1, 2}),
		},
		{
			name:    "distinct with order",
			sql:     "SELECT DISTINCT a FROM T ORDER BY a;",
			columns: []string{"a"},
			rows:    rows([]int64{1}, []int64{2}),
		},
		{
			name:    "or combinator",
			sql:     "SELECT b FROM T WHERE b >= 30 OR a = 2;",
			columns: []string{"b"},
			rows:    rows([]int64{20}, []int64{30}),
		},
		{
			name:    "empty result",
			sql:     "SELECT a FROM T WHERE a > 100;",
			columns: []string{"a"},
			rows:    rows(),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := m.Query(tc.sql)
			require.NoError(t, err)

			assert.Equal(t, tc.columns, result.Columns)
			assert.Equal(t, tc.rows, result.Rows)
			assert.NotEmpty(t, result.QueryID)
		})
	}
}

func TestQueryAverageIsReal(t *testing.T) {
	m := newLoadedManager(t)

	result, err := m.Query("SELECT a, AVG(b) FROM T GROUP BY a;")
	require.NoError(t, err)

	assert.Equal(t, [][]schema.Value{
		{schema.Int(1), schema.Float(20)},
		{schema.Int(2), schema.Float(20)},
	}, result.Rows)
	assert.Equal(t, "20.0", result.Rows[0][1].String())
}

func TestQueryScalarOverNoRows(t *testing.T) {
	m := newLoadedManager(t)

	result, err := m.Query("SELECT MAX(b) FROM T WHERE a > 5;")
	require.NoError(t, err)

	assert.Equal(t, [][]schema.Value{{schema.Null()}}, result.Rows)
}

func TestQueryErrors(t *testing.T) {
	m := newLoadedManager(t)

	_, err := m.Query("SELECT a FROM T")
	assert.True(t, errors.Is(err, query.ErrMissingTerminator))

	_, err = m.Query("SELECT a FROM missing;")
	assert.True(t, errors.Is(err, schema.ErrUnknownTable))

	_, err = m.Query("SELECT z FROM T;")
	assert.True(t, errors.Is(err, schema.ErrUnknownColumn))

	_, err = m.Query("SELECT a FROM T ORDER BY z;")
	assert.True(t, errors.Is(err, schema.ErrUnknownColumn))

	// the aggregate named in WHERE is not part of the grouping
	_, err = m.Query("SELECT a, SUM(b) FROM T WHERE MAX(b) > 1 GROUP BY a;")
	assert.True(t, errors.Is(err, schema.ErrUnknownColumn))

	_, err = m.Query("SELECT a, b FROM T GROUP BY a;")
	assert.True(t, errors.Is(err, query.ErrInvalidGroupProjection))
}

func TestQueryDoesNotChangeStoredTables(t *testing.T) {
	m := newLoadedManager(t)

	_, err := m.Query("SELECT a FROM T WHERE a = 2 ORDER BY b DESC;")
	require.NoError(t, err)

	table, err := m.Meta.GetTable("T")
	require.NoError(t, err)
	values, err := table.Column("b")
	require.NoError(t, err)
	assert.Equal(t, schema.IntsToValues([]int64{10, 20, 30}), values)
}

func TestQueryBeforeLoad(t *testing.T) {
	m := New(ManagerConfig{})

	_, err := m.Query("SELECT a FROM T;")
	assert.True(t, errors.Is(err, ErrNotLoaded))
}

func TestLoadMissingCatalog(t *testing.T) {
	m := New(ManagerConfig{PathToStorage: t.TempDir()})

	err := m.Load(context.Background())
	assert.True(t, errors.Is(err, schema.ErrCatalogNotFound))
}
