package main

import (
	"bytes"
	"testing"

	"github.com/dot5enko/mini-column-sql/manager/meta"
	"github.com/dot5enko/mini-column-sql/ops"
	"github.com/dot5enko/mini-column-sql/schema"
	"github.com/stretchr/testify/assert"
)

func TestRenderResult(t *testing.T) {

	var buf bytes.Buffer
	renderResult(&buf, &schema.Result{
		Columns: []string{"a", "AVG(b)"},
		Rows: [][]schema.Value{
			{schema.Int(1), schema.Float(20)},
			{schema.Int(2), schema.Null()},
		},
	})

	sep := "----------------------------------"
	expected := sep + "\n" +
		"a\tAVG(b)\n" +
		sep + "\n" +
		"1\t20.0\n" +
		"2\tNULL\n" +
		sep + "\n"

	assert.Equal(t, expected, buf.String())
}

func TestRenderEmptyResult(t *testing.T) {

	var buf bytes.Buffer
	renderResult(&buf, &schema.Result{Columns: []string{"a"}, Rows: [][]schema.Value{}})

	sep := "-----------------"
	assert.Equal(t, sep+"\na\n"+sep+"\n"+sep+"\n", buf.String())
}

func TestRenderTables(t *testing.T) {

	var buf bytes.Buffer
	renderTables(&buf, []meta.TableInfo{
		{
			Name:       "T",
			Rows:       3,
			Compressed: true,
			Columns: []meta.ColumnStats{
				{Name: "a", Bounds: ops.Bounds[int64]{Min: 1, Max: 2}},
				{Name: "b", Empty: true},
			},
		},
	})

	assert.Equal(t, "T (3 rows, csv.lz4)\n\ta [1 .. 2]\n\tb\n", buf.String())
}

func TestIsQuit(t *testing.T) {
	assert.True(t, isQuit("QUIT"))
	assert.True(t, isQuit("quit;"))
	assert.True(t, isQuit(" Quit "))
	assert.False(t, isQuit("SELECT a FROM quit;"))
	assert.False(t, isQuit(""))
}
