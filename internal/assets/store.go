package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var ErrBadAssetPath = errors.New("asset path escapes the store root")

// Store is the binary asset collaborator: upload yields a retrievable
// URL, delete is permitted to fail without breaking the caller.
type Store interface {
	Upload(ctx context.Context, path string, r io.Reader) (string, error)
	Delete(ctx context.Context, path string) error
}

// DiskStore keeps assets under a root directory and hands out URLs below
// a configured base. Files are served statically by the HTTP layer.
type DiskStore struct {
	root    string
	baseURL string
}

func NewDiskStore(root, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create asset root: %w", err)
	}
	return &DiskStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *DiskStore) resolve(path string) (string, error) {
	cleaned := filepath.Clean("/" + path)
	if cleaned == "/" {
		return "", ErrBadAssetPath
	}
	return filepath.Join(s.root, cleaned), nil
}

func (s *DiskStore) Upload(ctx context.Context, path string, r io.Reader) (string, error) {
	target, err := s.resolve(path)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("failed to create asset directory: %w", err)
	}

	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("failed to create asset file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("failed to write asset: %w", err)
	}

	return s.baseURL + "/" + strings.TrimLeft(path, "/"), nil
}

func (s *DiskStore) Delete(ctx context.Context, path string) error {
	target, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return nil
}
