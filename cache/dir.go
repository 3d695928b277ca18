package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/thumbgallery/model"
)

// EnsureDirectory makes sure path is a writable directory, creating it when
// missing. It is safe to call on an existing directory.
func EnsureDirectory(path string) error {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		if err := checkWritable(path); err != nil {
			return fmt.Errorf("%w: %s: %v", model.ErrDirectoryNotWritable, path, err)
		}
		return nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s: %v", model.ErrDirectoryCreateFailed, path, err)
	}

	if err := os.Mkdir(path, 0755); err != nil {
		return fmt.Errorf("%w: %s: %v", model.ErrDirectoryCreateFailed, path, err)
	}
	return nil
}

func checkWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".writable-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
