package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore keeps blobs as plain files under a root directory.
type DiskStore struct {
	root string
}

// NewDiskStore builds a Store rooted at dir.
func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{root: dir}
}

// resolve maps an object key onto the filesystem, refusing keys that
// escape the root.
func (s *DiskStore) resolve(object string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(object))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", os.ErrInvalid
	}
	return filepath.Join(s.root, clean), nil
}

// Put writes an object to disk, creating parent directories.
func (s *DiskStore) Put(ctx context.Context, object string, reader io.Reader, size int64, contentType string) error {
	path, err := s.resolve(object)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, reader); err != nil {
		out.Close()
		os.Remove(path)
		return err
	}
	return out.Close()
}

// Get opens an object for reading.
func (s *DiskStore) Get(ctx context.Context, object string) (io.ReadCloser, ObjectInfo, error) {
	path, err := s.resolve(object)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ObjectInfo{}, err
	}
	return f, ObjectInfo{Size: stat.Size()}, nil
}

// Remove deletes an object from disk.
func (s *DiskStore) Remove(ctx context.Context, object string) error {
	path, err := s.resolve(object)
	if err != nil {
		return err
	}
	return os.Remove(path)
}
