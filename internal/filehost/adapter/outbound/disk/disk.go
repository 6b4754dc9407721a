package disk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthanhphan/go-file-board/internal/filehost/config"
	"github.com/anthanhphan/go-file-board/internal/filehost/domain"
	"github.com/anthanhphan/go-file-board/internal/filehost/port"
	"github.com/anthanhphan/gosdk/logger"
)

const (
	// stagingDir holds in-flight uploads. It lives inside the storage directory
	// so the final rename never crosses filesystems.
	stagingDir  = ".upload-staging"
	tempPattern = "upload-*"
)

// Adapter implements port.Backend on a flat directory, one file per key.
// Writes go to a temp file under stagingDir and are renamed into place.
type Adapter struct {
	dir     string
	staging string
	fsync   bool
}

// Ensure Adapter implements port.Backend.
var _ port.Backend = (*Adapter)(nil)

// NewAdapter creates the storage directory if needed and removes temp files left by a crash.
func NewAdapter(cfg config.StorageConfig) (*Adapter, error) {
	dir := filepath.Clean(cfg.Dir)
	staging := filepath.Join(dir, stagingDir)
	if err := os.MkdirAll(staging, 0750); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	a := &Adapter{dir: dir, staging: staging, fsync: cfg.FSync}
	a.removeStaleTemps()
	return a, nil
}

func (a *Adapter) path(key string) (string, error) {
	switch {
	case key == "", key == ".", key == "..", strings.ContainsAny(key, `/\`):
		return "", port.ErrInvalidName
	case key == stagingDir:
		return "", fmt.Errorf("%w: %q is reserved", port.ErrInvalidName, key)
	}
	return filepath.Join(a.dir, key), nil
}

// Put writes data to a temp file and renames it over key.
func (a *Adapter) Put(ctx context.Context, key string, data []byte) error {
	target, err := a.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(a.staging, tempPattern)
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err := tmp.Chmod(0640); err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if a.fsync {
		if err := tmp.Sync(); err != nil {
			return err
		}
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	// Rename within one filesystem is atomic on POSIX.
	if err := os.Rename(tmpName, target); err != nil {
		return err
	}

	success = true
	return nil
}

// Get reads the whole file. The open descriptor pins the inode, so a concurrent
// rename cannot mix old metadata with new content.
func (a *Adapter) Get(ctx context.Context, key string) (*domain.StoredFile, error) {
	target, err := a.path(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(target) // #nosec G304 -- key is a single sanitized segment
	if err != nil {
		return nil, mapNotExist(err)
	}
	defer func() { _ = f.Close() }()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if !st.Mode().IsRegular() {
		return nil, port.ErrFileNotFound
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &domain.StoredFile{FileInfo: toFileInfo(st), Data: data}, nil
}

func (a *Adapter) Stat(ctx context.Context, key string) (domain.FileInfo, error) {
	target, err := a.path(key)
	if err != nil {
		return domain.FileInfo{}, err
	}

	st, err := os.Stat(target)
	if err != nil {
		return domain.FileInfo{}, mapNotExist(err)
	}
	if !st.Mode().IsRegular() {
		return domain.FileInfo{}, port.ErrFileNotFound
	}
	return toFileInfo(st), nil
}

func (a *Adapter) Delete(ctx context.Context, key string) error {
	target, err := a.path(key)
	if err != nil {
		return err
	}

	st, err := os.Lstat(target)
	if err != nil {
		return mapNotExist(err)
	}
	if st.IsDir() {
		return port.ErrFileNotFound
	}
	return mapNotExist(os.Remove(target))
}

// List returns every regular file in the directory. Staged uploads are not listed.
func (a *Adapter) List(ctx context.Context) ([]domain.FileInfo, error) {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		return nil, err
	}

	out := make([]domain.FileInfo, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		st, err := e.Info()
		if err != nil {
			// Removed between ReadDir and Info.
			continue
		}
		out = append(out, toFileInfo(st))
	}
	return out, nil
}

// removeStaleTemps best-effort deletes temp files from interrupted writes.
func (a *Adapter) removeStaleTemps() {
	matches, err := filepath.Glob(filepath.Join(a.staging, tempPattern))
	if err != nil {
		return
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			logger.Warnw("Failed to remove stale temp file", "path", m, "error", err.Error())
			continue
		}
		logger.Infow("Removed stale temp file", "path", m)
	}
}

// toFileInfo uses mtime as creation time: every Put renames a fresh file into place,
// so mtime is the moment the current content was created.
func toFileInfo(st fs.FileInfo) domain.FileInfo {
	return domain.FileInfo{
		Name:       st.Name(),
		Size:       st.Size(),
		CreatedAt:  st.ModTime(),
		ModifiedAt: st.ModTime(),
	}
}

func mapNotExist(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return port.ErrFileNotFound
	}
	return err
}
