//go:build unix

package io

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func (f *FileReader) withMappedContents(size int, cb func(content []byte) error) error {

	data, mmapErr := unix.Mmap(int(f.file.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if mmapErr != nil {
		return fmt.Errorf("unable to mmap %s: %w", f.path, mmapErr)
	}

	cbErr := cb(data)

	if unmapErr := unix.Munmap(data); unmapErr != nil && cbErr == nil {
		return fmt.Errorf("unable to unmap %s: %w", f.path, unmapErr)
	}

	return cbErr
}
