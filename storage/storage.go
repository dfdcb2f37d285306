// storage/storage.go
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/config"
)

// Store persists uploaded attachment content and hands back the URL
// the document row will reference.
type Store interface {
	Save(ctx context.Context, key string, content io.Reader, contentType string) (url string, err error)
	Delete(ctx context.Context, key string) error
}

// NewStore builds the configured store implementation.
func NewStore() (Store, error) {
	switch driver := config.GetString("storage.driver"); driver {
	case "s3":
		return NewS3Store(
			config.GetString("storage.bucket"),
			config.GetString("storage.region"),
		)
	case "local":
		return NewLocalStore(
			config.GetString("storage.dir"),
			config.GetString("storage.baseURL"),
		)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", driver)
	}
}

// LocalStore writes attachments to a directory on disk. Development
// only; production deployments use the object store.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: baseURL}, nil
}

func (s *LocalStore) Save(ctx context.Context, key string, content io.Reader, contentType string) (string, error) {
	path := filepath.Join(s.dir, filepath.Clean("/"+key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create attachment directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create attachment file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		return "", fmt.Errorf("failed to write attachment: %w", err)
	}
	return s.baseURL + "/" + key, nil
}

func (s *LocalStore) Delete(ctx context.Context, key string) error {
	path := filepath.Join(s.dir, filepath.Clean("/"+key))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	return nil
}
