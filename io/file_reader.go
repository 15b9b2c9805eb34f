package io

import (
	"errors"
	"os"
)

type FileReader struct {
	path   string
	file   *os.File
	opened bool

	exists bool
}

func NewFileReader(path string) *FileReader {

	_, err := os.Stat(path)

	freader := &FileReader{
		path:   path,
		exists: err == nil,
	}

	return freader
}

func (f *FileReader) Exists() bool {
	return f.exists
}

func (f *FileReader) Path() string {
	return f.path
}

func (f *FileReader) Open() (topErr error) {

	f.file, topErr = os.OpenFile(f.path, os.O_RDONLY, 0644)

	if topErr == nil {
		f.opened = true
	}

	return topErr
}

func (f *FileReader) Close() error {
	if !f.opened {
		return nil
	}

	f.opened = false
	return f.file.Close()
}

func (f *FileReader) size() (int, error) {
	if !f.opened {
		return 0, errors.New("file not opened")
	}

	info, err := f.file.Stat()
	if err != nil {
		return 0, err
	}

	return int(info.Size()), nil
}

// WithContents hands the whole file to cb. The slice is only valid during
// the callback.
func (f *FileReader) WithContents(cb func(content []byte) error) error {
	if !f.opened {
		return errors.New("file not opened")
	}

	size, sizeErr := f.size()
	if sizeErr != nil {
		return sizeErr
	}

	if size == 0 {
		return cb(nil)
	}

	return f.withMappedContents(size, cb)
}
