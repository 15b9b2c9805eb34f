//go:build !unix

package io

import "errors"

func (f *FileReader) withMappedContents(size int, cb func(content []byte) error) error {

	data := make([]byte, size)

	readBytes, err := f.file.ReadAt(data, 0)
	if err != nil && readBytes != size {
		return err
	}

	if readBytes != size {
		return errors.New("read bytes mismatch")
	}

	return cb(data)
}
