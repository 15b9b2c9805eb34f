package schema

import (
	"errors"
	"fmt"
)

var (
	ErrSchema = errors.New("schema error")

	ErrUnknownTable     = fmt.Errorf("%w: unknown table", ErrSchema)
	ErrUnknownColumn    = fmt.Errorf("%w: unknown column", ErrSchema)
	ErrDuplicateColumn  = fmt.Errorf("%w: duplicate column", ErrSchema)
	ErrCatalogNotFound  = fmt.Errorf("%w: catalog file not found", ErrSchema)
	ErrDataFileNotFound = fmt.Errorf("%w: data file not found", ErrSchema)
)

func UnknownTable(name string) error {
	return fmt.Errorf("%w `%s`", ErrUnknownTable, name)
}

func UnknownColumn(name string) error {
	return fmt.Errorf("%w `%s`", ErrUnknownColumn, name)
}
