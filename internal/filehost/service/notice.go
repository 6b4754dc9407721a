package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/anthanhphan/go-file-board/internal/filehost/port"
	"github.com/anthanhphan/go-file-board/pkg/resilience"
	"github.com/anthanhphan/gosdk/logger"
)

const (
	noticeSaveQueue   = 16
	noticeSaveTimeout = 5 * time.Second
)

// Notice holds the shared notice text. Writes are serialized by mu.
// When a store is attached, every write schedules a save on a single worker;
// each save persists the latest value, so saves never go backwards in time.
type Notice struct {
	mu      sync.RWMutex
	content string

	store port.NoticeStore
	saver *resilience.WorkerPool
}

// NewNotice creates an empty notice. store may be nil for pure in-memory operation.
func NewNotice(store port.NoticeStore) *Notice {
	n := &Notice{store: store}
	if store != nil {
		n.saver = resilience.NewWorkerPool(1, noticeSaveQueue)
	}
	return n
}

// Restore loads the persisted value, if any. Called once at startup.
func (n *Notice) Restore(ctx context.Context) error {
	if n.store == nil {
		return nil
	}

	content, err := n.store.Load(ctx)
	if err != nil {
		return err
	}

	n.mu.Lock()
	n.content = content
	n.mu.Unlock()
	logger.Infow("Notice restored", "length", len(content))
	return nil
}

// Read returns the current value.
func (n *Notice) Read() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.content
}

// Write replaces the value.
func (n *Notice) Write(content string) {
	n.mu.Lock()
	n.content = content
	n.mu.Unlock()

	n.scheduleSave()
}

// scheduleSave queues a save of the latest value. A full queue already holds a
// pending save that will read the value written here, so dropping is safe.
func (n *Notice) scheduleSave() {
	if n.saver == nil {
		return
	}

	err := n.saver.TrySubmit(n.save)
	switch {
	case err == nil, errors.Is(err, resilience.ErrWorkerPoolFull):
	default:
		logger.Warnw("Notice save not scheduled", "error", err.Error())
	}
}

func (n *Notice) save() {
	ctx, cancel := context.WithTimeout(context.Background(), noticeSaveTimeout)
	defer cancel()

	if err := n.store.Save(ctx, n.Read()); err != nil {
		logger.Warnw("Notice save failed", "error", err.Error())
	}
}

// Close waits for pending saves to finish.
func (n *Notice) Close() {
	if n.saver == nil {
		return
	}
	n.saver.Close()
	n.saver.Wait()
}
