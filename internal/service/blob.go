package service

import (
	"context"
	"io"
)

// BlobStorage keeps the contents of uploaded files. *blob.Storage satisfies it.
type BlobStorage interface {
	Put(ctx context.Context, key string, r io.Reader) (int64, error)
	Delete(ctx context.Context, key string) error
}
