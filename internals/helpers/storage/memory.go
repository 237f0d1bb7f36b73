package storage

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStorage: implementasi in-memory untuk test dan dev lokal tanpa Supabase.
type MemoryStorage struct {
	mu      sync.Mutex
	Objects map[string][]byte
	Deleted []string

	UploadErr error
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{Objects: map[string][]byte{}}
}

func (m *MemoryStorage) Upload(_ context.Context, path, _ string, data []byte) (string, error) {
	if m.UploadErr != nil {
		return "", m.UploadErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Objects[path] = data
	return fmt.Sprintf("memory://storage/v1/object/public/mem/%s", path), nil
}

func (m *MemoryStorage) Delete(_ context.Context, publicURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Deleted = append(m.Deleted, publicURL)
	if _, path, err := ExtractPublicPath(publicURL); err == nil {
		delete(m.Objects, path)
	}
	return nil
}
