package port

import (
	"context"
	"errors"

	"github.com/anthanhphan/go-file-board/internal/filehost/domain"
)

var (
	ErrFileNotFound         = errors.New("file not found")
	ErrInvalidName          = domain.ErrInvalidName
	ErrInvalidRequest       = errors.New("invalid request")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInternal             = errors.New("internal error")
)

//go:generate mockgen -destination=../service/mocks/backend_mock.go -package=mocks -source=storage.go

// Backend is the raw byte store under the file service. Keys are already sanitized.
type Backend interface {
	// Put replaces the full content of key. Readers never observe a partial write.
	Put(ctx context.Context, key string, data []byte) error

	// Get returns content and metadata, or ErrFileNotFound.
	Get(ctx context.Context, key string) (*domain.StoredFile, error)

	// Stat returns metadata only, or ErrFileNotFound.
	Stat(ctx context.Context, key string) (domain.FileInfo, error)

	// Delete removes key, or returns ErrFileNotFound.
	Delete(ctx context.Context, key string) error

	// List enumerates every entry, hidden ones included, in no particular order.
	List(ctx context.Context) ([]domain.FileInfo, error)
}
