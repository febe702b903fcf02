// Package filesystem routes every file operation through a swappable afero backend.
package filesystem

import (
	"io"
	"os"
)

// GacheFs lets gache caches (see the version package) store their files on the active backend.
type GacheFs struct{}

func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
