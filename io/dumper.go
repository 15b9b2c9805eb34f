package io

import (
	"bytes"
	"log/slog"
	"os"
	"strings"

	"github.com/dot5enko/mini-column-sql/compression"
	"github.com/dot5enko/mini-column-sql/schema"
)

// EncodeRows renders a relation in the data file format.
func EncodeRows(rel *schema.Relation) []byte {
	var buf bytes.Buffer

	rows, _ := rel.RowForm()
	for _, row := range rows {
		fields := make([]string, len(row))
		for i, v := range row {
			fields[i] = v.String()
		}
		buf.WriteString(strings.Join(fields, ","))
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

// DumpTable writes rel to path, lz4 compressed when compress is set.
func DumpTable(path string, rel *schema.Relation, compress bool) error {

	content := EncodeRows(rel)

	if compress {
		var compressed bytes.Buffer
		if err := compression.CompressLz4(content, &compressed); err != nil {
			return err
		}
		content = compressed.Bytes()
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	var writtenBytes int
	writtenBytes, err = f.Write(content)

	slog.Debug("table dumped", "bytes", writtenBytes, "path", path)

	return err
}
