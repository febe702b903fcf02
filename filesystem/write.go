// Package filesystem routes every file operation through a swappable afero backend.
package filesystem

import (
	"io"
	"os"
	"path/filepath"
)

// PartialSuffix marks files that are still being written.
const PartialSuffix = ".part"

// WriteAtomic copies r into a partial file next to path and renames it into place.
// The partial file is removed on failure, so path either holds the full content or is untouched.
func WriteAtomic(path string, r io.Reader) (written int64, err error) {
	fs := API()

	if err = fs.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return 0, err
	}

	part := path + PartialSuffix
	f, err := fs.OpenFile(part, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return 0, err
	}

	defer func() {
		if err != nil {
			_ = fs.Remove(part)
		}
	}()

	written, err = io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return written, err
	}

	return written, fs.Rename(part, path)
}
