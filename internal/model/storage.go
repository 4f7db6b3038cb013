package model

import (
	"context"
	"io"
)

// Storage is an object store for plant photos.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Stat(ctx context.Context, key string) (ObjectInfo, error)
	Delete(ctx context.Context, key string) error
}

// ObjectInfo describes a stored object. Stat returns ErrNotFound for missing keys.
type ObjectInfo struct {
	Size        int64
	ContentType string
}
