package io

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dot5enko/mini-column-sql/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCatalog(t *testing.T) {
	content := []byte(`<begin_table>
table1
A
 B
<end_table>

<begin_table>
table2
C
<end_table>
`)

	catalog, err := DecodeCatalog(content)
	require.NoError(t, err)

	assert.Equal(t, []string{"table1", "table2"}, catalog.Tables())

	t1, ok := catalog.Get("table1")
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B"}, t1.Columns)

	t2, ok := catalog.Get("table2")
	require.True(t, ok)
	assert.Equal(t, []string{"C"}, t2.Columns)
}

func TestDecodeCatalogMalformed(t *testing.T) {
	_, err := DecodeCatalog([]byte("A\n"))
	assert.True(t, errors.Is(err, ErrDecode))

	_, err = DecodeCatalog([]byte("<begin_table>\n"))
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestDecodeRows(t *testing.T) {
	cols, err := DecodeRows([]byte("1, 10\n2,20\r\n\n 1 ,30"), 2)
	require.NoError(t, err)

	assert.Equal(t, [][]int64{{1, 2, 1}, {10, 20, 30}}, cols)
}

func TestDecodeRowsErrors(t *testing.T) {
	_, err := DecodeRows([]byte("1,x\n"), 2)
	assert.True(t, errors.Is(err, ErrDecode))

	_, err = DecodeRows([]byte("1,2,3\n"), 2)
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestDecodeRowsEmpty(t *testing.T) {
	cols, err := DecodeRows(nil, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{}, {}}, cols)
}

func TestDumpAndReadBack(t *testing.T) {
	rel := schema.NewRelation()
	rel.MustAddColumn("a", schema.IntsToValues([]int64{1, 2}))
	rel.MustAddColumn("b", schema.IntsToValues([]int64{-10, 20}))

	path := filepath.Join(t.TempDir(), "T.csv")
	require.NoError(t, DumpTable(path, rel, false))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1,-10\n2,20\n", string(raw))

	reader := NewFileReader(path)
	require.True(t, reader.Exists())
	require.NoError(t, reader.Open())
	defer reader.Close()

	var cols [][]int64
	err = reader.WithContents(func(content []byte) error {
		var decodeErr error
		cols, decodeErr = DecodeRows(content, 2)
		return decodeErr
	})
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{1, 2}, {-10, 20}}, cols)
}

func TestFileReaderEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	reader := NewFileReader(path)
	require.NoError(t, reader.Open())
	defer reader.Close()

	called := false
	err := reader.WithContents(func(content []byte) error {
		called = true
		assert.Empty(t, content)
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestFileReaderMissing(t *testing.T) {
	reader := NewFileReader(filepath.Join(t.TempDir(), "nope.csv"))
	assert.False(t, reader.Exists())
	assert.Error(t, reader.WithContents(func([]byte) error { return nil }))
}
