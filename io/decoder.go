package io

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dot5enko/mini-column-sql/schema"
)

var (
	ErrDecode = errors.New("decode error")
)

const (
	beginTableMarker = "<begin_table>"
	endTableMarker   = "<end_table>"
)

// DecodeCatalog parses `<begin_table>` / name / columns... / `<end_table>`
// blocks top to bottom.
func DecodeCatalog(content []byte) (*schema.Catalog, error) {

	catalog := schema.NewCatalog()

	var current *schema.Schema
	expectName := false

	flush := func() {
		if current != nil {
			catalog.Add(*current)
			current = nil
		}
	}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue
		case line == beginTableMarker:
			flush()
			expectName = true
		case line == endTableMarker:
			if expectName {
				return nil, fmt.Errorf("%w: catalog line %d: table block without a name", ErrDecode, lineNo)
			}
			flush()
		case expectName:
			expectName = false
			current = &schema.Schema{Name: line, Columns: []string{}}
		case current == nil:
			return nil, fmt.Errorf("%w: catalog line %d: column `%s` outside of a table block", ErrDecode, lineNo, line)
		default:
			current.Columns = append(current.Columns, line)
		}
	}

	if scanErr := scanner.Err(); scanErr != nil {
		return nil, scanErr
	}

	if expectName {
		return nil, fmt.Errorf("%w: catalog ends inside a table block", ErrDecode)
	}
	flush()

	return catalog, nil
}

// DecodeRows parses comma separated integer rows into column-major slices.
// Blank lines are skipped.
func DecodeRows(content []byte, columns int) ([][]int64, error) {

	result := make([][]int64, columns)
	for i := range result {
		result[i] = []int64{}
	}

	lineNo := 0
	for len(content) > 0 {
		lineNo++

		var line []byte
		if idx := bytes.IndexByte(content, '\n'); idx >= 0 {
			line, content = content[:idx], content[idx+1:]
		} else {
			line, content = content, nil
		}

		trimmed := strings.TrimSpace(string(line))
		if trimmed == "" {
			continue
		}

		fields := strings.Split(trimmed, ",")
		if len(fields) != columns {
			return nil, fmt.Errorf("%w: line %d: expected %d fields, got %d", ErrDecode, lineNo, columns, len(fields))
		}

		for idx, field := range fields {
			cell := strings.TrimSpace(field)

			val, parseErr := strconv.ParseInt(cell, 10, 64)
			if parseErr != nil {
				return nil, fmt.Errorf("%w: line %d, field %d: `%s` is not an integer", ErrDecode, lineNo, idx+1, field)
			}

			result[idx] = append(result[idx], val)
		}
	}

	return result, nil
}
