package page

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// Load parses the HTML document at path.
func Load(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading page: %w", err)
	}
	return Parse(bytes.NewReader(b))
}

// Save renders d and replaces path with the result. Readers of path see
// either the old page or the complete new one, never a partial render.
func (d *Document) Save(path string, mode os.FileMode) error {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	if err := replaceFile(path, buf.Bytes(), mode); err != nil {
		return fmt.Errorf("saving page %s: %w", path, err)
	}
	return nil
}

// replaceFile writes b next to path and renames it into place.
func replaceFile(path string, b []byte, mode os.FileMode) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if _, err = f.Write(b); err != nil {
		return err
	}
	if err = f.Chmod(mode); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
