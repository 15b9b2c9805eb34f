package manager

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dot5enko/mini-column-sql/manager/meta"
	"github.com/dot5enko/mini-column-sql/schema"
)

type ManagerConfig struct {
	// directory holding the per-table data files
	PathToStorage string
	// catalog file, relative to PathToStorage unless absolute
	CatalogFile string

	LoadWorkers int
}

type Manager struct {
	config ManagerConfig

	Meta *meta.MetaManager
}

func New(config ManagerConfig) *Manager {
	if config.CatalogFile == "" {
		config.CatalogFile = "metadata.txt"
	}
	if config.PathToStorage == "" {
		config.PathToStorage = "."
	}

	return &Manager{
		config: config,
	}
}

func (m *Manager) catalogPath() string {
	if filepath.IsAbs(m.config.CatalogFile) {
		return m.config.CatalogFile
	}
	return filepath.Join(m.config.PathToStorage, m.config.CatalogFile)
}

// Load reads the catalog and every table's data file. It must be called
// once before Query.
func (m *Manager) Load(ctx context.Context) error {

	catalog, catalogErr := meta.LoadCatalog(m.catalogPath())
	if catalogErr != nil {
		return catalogErr
	}

	metaManager := meta.NewMetaManager(m.config.PathToStorage, catalog, m.config.LoadWorkers)

	if loadErr := metaManager.LoadTableData(ctx); loadErr != nil {
		return fmt.Errorf("unable to load table data: %w", loadErr)
	}

	m.Meta = metaManager

	return nil
}

func (m *Manager) Describe() []meta.TableInfo {
	if m.Meta == nil {
		return nil
	}
	return m.Meta.Describe()
}

func (m *Manager) Catalog() *schema.Catalog {
	if m.Meta == nil {
		return nil
	}
	return m.Meta.Catalog()
}
