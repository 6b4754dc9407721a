package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/anthanhphan/go-file-board/internal/filehost/config"
	"github.com/anthanhphan/go-file-board/internal/filehost/domain"
	"github.com/anthanhphan/go-file-board/internal/filehost/port"
	"github.com/anthanhphan/gosdk/logger"
)

// FileServiceImpl is the facade that wires use-case services for file operations.
type FileServiceImpl struct {
	cfg     *config.Config
	backend port.Backend

	// putMu serializes eviction and write while retention is enabled.
	putMu sync.Mutex

	lister    *listService
	retention *retentionService
}

// Ensure FileServiceImpl implements port.FileService.
var _ port.FileService = (*FileServiceImpl)(nil)

// NewFileService builds the file service facade and its use-case services.
func NewFileService(cfg *config.Config, backend port.Backend) *FileServiceImpl {
	svc := &FileServiceImpl{
		cfg:     cfg,
		backend: backend,
	}

	svc.lister = newListService(svc)
	svc.retention = newRetentionService(svc, cfg.Retention.Capacity)

	return svc
}

// Put sanitizes rawName, enforces retention and atomically replaces the content.
func (s *FileServiceImpl) Put(ctx context.Context, rawName string, data []byte) (string, error) {
	name, err := domain.SanitizeName(rawName)
	if err != nil {
		return "", fmt.Errorf("%w: %q", port.ErrInvalidName, rawName)
	}

	if s.retention.enabled() {
		s.putMu.Lock()
		defer s.putMu.Unlock()

		if err := s.retention.makeRoomFor(ctx, name); err != nil {
			logger.Errorw("Retention failed", "file_name", name, "error", err.Error())
			return "", internalError(err)
		}
	}

	if err := s.backend.Put(ctx, name, data); err != nil {
		logger.Errorw("Write failed", "file_name", name, "error", err.Error())
		return "", internalError(err)
	}

	logger.Infow("File stored", "file_name", name, "size_bytes", len(data))
	return s.DownloadURL(name), nil
}

// Get returns the full content and metadata of a stored file.
func (s *FileServiceImpl) Get(ctx context.Context, rawName string) (*domain.StoredFile, error) {
	name, err := domain.SanitizeName(rawName)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", port.ErrInvalidName, rawName)
	}

	file, err := s.backend.Get(ctx, name)
	if errors.Is(err, port.ErrFileNotFound) {
		return nil, err
	}
	if err != nil {
		logger.Errorw("Read failed", "file_name", name, "error", err.Error())
		return nil, internalError(err)
	}
	return file, nil
}

// Delete removes a stored file.
func (s *FileServiceImpl) Delete(ctx context.Context, rawName string) error {
	name, err := domain.SanitizeName(rawName)
	if err != nil {
		return fmt.Errorf("%w: %q", port.ErrInvalidName, rawName)
	}

	err = s.backend.Delete(ctx, name)
	if errors.Is(err, port.ErrFileNotFound) {
		return err
	}
	if err != nil {
		logger.Errorw("Delete failed", "file_name", name, "error", err.Error())
		return internalError(err)
	}

	logger.Infow("File deleted", "file_name", name)
	return nil
}

// List delegates ordering to the list use-case service.
func (s *FileServiceImpl) List(ctx context.Context, order domain.SortOrder) ([]domain.FileInfo, error) {
	infos, err := s.lister.list(ctx, order)
	if err != nil {
		logger.Errorw("List failed", "order", string(order), "error", err.Error())
		return nil, internalError(err)
	}
	return infos, nil
}

// DownloadURL builds the canonical public URL of a sanitized name.
func (s *FileServiceImpl) DownloadURL(name string) string {
	base := strings.TrimRight(s.cfg.App.PublicBaseURL, "/")
	return base + "/" + url.PathEscape(name)
}

// internalError tags a backend failure as ErrInternal while keeping the cause's message.
func internalError(err error) error {
	if errors.Is(err, port.ErrInternal) {
		return err
	}
	return fmt.Errorf("%w: %w", port.ErrInternal, err)
}
