package meta

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/dot5enko/mini-column-sql/compression"
	"github.com/dot5enko/mini-column-sql/io"
	"github.com/dot5enko/mini-column-sql/ops"
	"github.com/dot5enko/mini-column-sql/schema"
	"golang.org/x/sync/errgroup"
)

const DefaultLoadWorkers = 4

// ColumnStats is collected while decoding a table.
type ColumnStats struct {
	Name   string
	Bounds ops.Bounds[int64]
	Empty  bool
}

type TableInfo struct {
	Name       string
	Rows       int
	Compressed bool
	Columns    []ColumnStats
}

// MetaManager owns the catalog and the column store. Tables are written once
// by LoadTableData and only read afterwards.
type MetaManager struct {
	catalog *schema.Catalog

	tables map[string]*schema.Relation
	info   map[string]TableInfo
	lock   sync.RWMutex

	storagePath string
	workers     int
}

func NewMetaManager(storagePath string, catalog *schema.Catalog, workers int) *MetaManager {
	if workers <= 0 {
		workers = DefaultLoadWorkers
	}

	return &MetaManager{
		catalog:     catalog,
		tables:      map[string]*schema.Relation{},
		info:        map[string]TableInfo{},
		storagePath: storagePath,
		workers:     workers,
	}
}

// LoadCatalog reads the catalog file at path.
func LoadCatalog(path string) (*schema.Catalog, error) {

	fullContent, contentErr := os.ReadFile(path)
	if contentErr != nil {
		if errors.Is(contentErr, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", schema.ErrCatalogNotFound, path)
		}
		return nil, contentErr
	}

	catalog, decodeErr := io.DecodeCatalog(fullContent)
	if decodeErr != nil {
		return nil, fmt.Errorf("unable to decode catalog %s: %w", path, decodeErr)
	}

	return catalog, nil
}

func (m *MetaManager) Catalog() *schema.Catalog {
	return m.catalog
}

// LoadTableData drops catalog tables that have no data file and decodes the
// rest concurrently.
func (m *MetaManager) LoadTableData(ctx context.Context) error {

	type pending struct {
		schema     schema.Schema
		reader     *io.FileReader
		compressed bool
	}

	toLoad := []pending{}

	for _, table := range m.catalog.Tables() {
		tableSchema, _ := m.catalog.Get(table)

		reader, compressed := m.dataFileFor(table)
		if reader == nil {
			slog.Warn("no data file for table, dropping it from the catalog", "table", table)
			m.catalog.Remove(table)
			continue
		}

		toLoad = append(toLoad, pending{schema: tableSchema, reader: reader, compressed: compressed})
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(m.workers)

	for _, it := range toLoad {
		group.Go(func() error {
			if ctxErr := groupCtx.Err(); ctxErr != nil {
				return ctxErr
			}

			rel, info, loadErr := loadTable(it.schema, it.reader, it.compressed)
			if loadErr != nil {
				return fmt.Errorf("unable to load table `%s` from %s: %w", it.schema.Name, it.reader.Path(), loadErr)
			}

			m.lock.Lock()
			m.tables[it.schema.Name] = rel
			m.info[it.schema.Name] = info
			m.lock.Unlock()

			slog.Info("loaded table", "table", info.Name, "rows", info.Rows, "columns", len(info.Columns), "compressed", info.Compressed, "path", it.reader.Path())

			for _, col := range info.Columns {
				if col.Empty {
					continue
				}
				slog.Debug("column bounds", "table", info.Name, "column", col.Name, "min", col.Bounds.Min, "max", col.Bounds.Max)
			}

			return nil
		})
	}

	return group.Wait()
}

func loadTable(tableSchema schema.Schema, reader *io.FileReader, compressed bool) (*schema.Relation, TableInfo, error) {

	info := TableInfo{Name: tableSchema.Name, Compressed: compressed}

	if openErr := reader.Open(); openErr != nil {
		return nil, info, openErr
	}
	defer reader.Close()

	var columns [][]int64

	readErr := reader.WithContents(func(content []byte) error {
		if compressed {
			decompressed, decompressErr := compression.DecompressLz4(content)
			if decompressErr != nil {
				return decompressErr
			}
			content = decompressed
		}

		var decodeErr error
		columns, decodeErr = io.DecodeRows(content, len(tableSchema.Columns))
		return decodeErr
	})

	if readErr != nil {
		return nil, info, readErr
	}

	rel := schema.NewRelation()
	for idx, name := range tableSchema.Columns {
		if addErr := rel.AddColumn(name, schema.IntsToValues(columns[idx])); addErr != nil {
			return nil, info, addErr
		}

		stats := ColumnStats{Name: name, Empty: len(columns[idx]) == 0}
		if !stats.Empty {
			stats.Bounds = ops.GetMaxMin(columns[idx])
		}
		info.Columns = append(info.Columns, stats)
	}

	info.Rows = rel.Rows()

	return rel, info, nil
}

// GetTable returns the loaded relation for a table. The relation is shared
// and must not be modified.
func (m *MetaManager) GetTable(name string) (*schema.Relation, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	rel, ok := m.tables[name]
	if !ok {
		return nil, schema.UnknownTable(name)
	}
	return rel, nil
}

func (m *MetaManager) TableSchema(name string) (schema.Schema, error) {
	s, ok := m.catalog.Get(name)
	if !ok {
		return schema.Schema{}, schema.UnknownTable(name)
	}
	return s, nil
}

// Describe reports the loaded tables in catalog order.
func (m *MetaManager) Describe() []TableInfo {
	m.lock.RLock()
	defer m.lock.RUnlock()

	result := []TableInfo{}
	for _, name := range m.catalog.Tables() {
		if info, ok := m.info[name]; ok {
			result = append(result, info)
		}
	}
	return result
}
