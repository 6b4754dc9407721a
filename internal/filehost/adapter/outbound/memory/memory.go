package memory

import (
	"context"
	"sync"
	"time"

	"github.com/anthanhphan/go-file-board/internal/filehost/domain"
	"github.com/anthanhphan/go-file-board/internal/filehost/port"
)

type entry struct {
	data    []byte
	created time.Time
}

// Adapter keeps files in a map. Content slices are never mutated after insert,
// so Put replaces an entry atomically by swapping the pointer.
type Adapter struct {
	mu    sync.RWMutex
	files map[string]*entry
	now   func() time.Time
}

// Ensure Adapter implements port.Backend.
var _ port.Backend = (*Adapter)(nil)

// Option configures an Adapter.
type Option func(*Adapter)

// WithClock overrides the time source used for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *Adapter) { a.now = now }
}

func New(opts ...Option) *Adapter {
	a := &Adapter{
		files: make(map[string]*entry),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Adapter) Put(ctx context.Context, key string, data []byte) error {
	if key == "" {
		return port.ErrInvalidName
	}
	e := &entry{data: append([]byte(nil), data...), created: a.now()}

	a.mu.Lock()
	a.files[key] = e
	a.mu.Unlock()
	return nil
}

func (a *Adapter) Get(ctx context.Context, key string) (*domain.StoredFile, error) {
	a.mu.RLock()
	e, ok := a.files[key]
	a.mu.RUnlock()
	if !ok {
		return nil, port.ErrFileNotFound
	}

	return &domain.StoredFile{
		FileInfo: e.info(key),
		Data:     append([]byte(nil), e.data...),
	}, nil
}

func (a *Adapter) Stat(ctx context.Context, key string) (domain.FileInfo, error) {
	a.mu.RLock()
	e, ok := a.files[key]
	a.mu.RUnlock()
	if !ok {
		return domain.FileInfo{}, port.ErrFileNotFound
	}
	return e.info(key), nil
}

func (a *Adapter) Delete(ctx context.Context, key string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.files[key]; !ok {
		return port.ErrFileNotFound
	}
	delete(a.files, key)
	return nil
}

func (a *Adapter) List(ctx context.Context) ([]domain.FileInfo, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]domain.FileInfo, 0, len(a.files))
	for name, e := range a.files {
		out = append(out, e.info(name))
	}
	return out, nil
}

func (e *entry) info(name string) domain.FileInfo {
	return domain.FileInfo{
		Name:       name,
		Size:       int64(len(e.data)),
		CreatedAt:  e.created,
		ModifiedAt: e.created,
	}
}
