package publish

import (
	"context"
	"os"
	"path/filepath"
)

// DiskStore writes published files below a local directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the directory if needed and returns a store rooted
// there.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &DiskStore{dir: dir}, nil
}

// Dir returns the store root.
func (s *DiskStore) Dir() string { return s.dir }

// Put writes data to dir/key through a temp file and rename, so readers
// never see a partial file. The content type is not recorded on disk.
func (s *DiskStore) Put(ctx context.Context, key string, data []byte, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key, err := cleanKey(key)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".publish-*")
	if err != nil {
		return "", err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return path, nil
}
