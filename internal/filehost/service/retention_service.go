package service

import (
	"context"
	"errors"

	"github.com/anthanhphan/go-file-board/internal/filehost/port"
	"github.com/anthanhphan/gosdk/logger"
)

// retentionService keeps the number of stored files below a fixed capacity
// by evicting the oldest entries before a new name is written.
type retentionService struct {
	core     *FileServiceImpl
	capacity int
}

// newRetentionService creates the rolling-retention use-case service.
func newRetentionService(core *FileServiceImpl, capacity int) *retentionService {
	return &retentionService{core: core, capacity: capacity}
}

func (s *retentionService) enabled() bool {
	return s.capacity > 0
}

// makeRoomFor evicts oldest entries until one more file fits.
// Overwriting an existing name keeps the count unchanged and evicts nothing.
func (s *retentionService) makeRoomFor(ctx context.Context, name string) error {
	_, err := s.core.backend.Stat(ctx, name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, port.ErrFileNotFound) {
		return err
	}

	infos, err := s.core.lister.visible(ctx)
	if err != nil {
		return err
	}

	excess := len(infos) - s.capacity + 1
	if excess <= 0 {
		return nil
	}

	sortByAge(infos)
	for _, victim := range infos[:excess] {
		err := s.core.backend.Delete(ctx, victim.Name)
		if err != nil && !errors.Is(err, port.ErrFileNotFound) {
			return err
		}
		logger.Infow("Evicted file by retention", "file_name", victim.Name, "created_at", victim.CreatedAt, "capacity", s.capacity)
	}
	return nil
}
