package meta

import (
	"path/filepath"

	"github.com/dot5enko/mini-column-sql/io"
)

const (
	DataFileExtension           = ".csv"
	CompressedDataFileExtension = ".csv.lz4"
)

func (m *MetaManager) getAbsStoragePath(segments ...string) string {

	pathSegments := []string{m.storagePath}
	pathSegments = append(pathSegments, segments...)

	return filepath.Join(pathSegments...)
}

// dataFileFor prefers the plain file and falls back to the lz4 one. nil
// means the table has no data file at all.
func (m *MetaManager) dataFileFor(table string) (reader *io.FileReader, compressed bool) {

	plain := io.NewFileReader(m.getAbsStoragePath(table + DataFileExtension))
	if plain.Exists() {
		return plain, false
	}

	packed := io.NewFileReader(m.getAbsStoragePath(table + CompressedDataFileExtension))
	if packed.Exists() {
		return packed, true
	}

	return nil, false
}
