package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/anthanhphan/go-file-board/internal/filehost/adapter/outbound/disk"
	"github.com/anthanhphan/go-file-board/internal/filehost/adapter/outbound/memory"
	"github.com/anthanhphan/go-file-board/internal/filehost/config"
	"github.com/anthanhphan/go-file-board/internal/filehost/domain"
	"github.com/anthanhphan/go-file-board/internal/filehost/port"
	"github.com/anthanhphan/go-file-board/internal/filehost/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// steppingClock returns a strictly increasing time on every call.
type steppingClock struct {
	mu  sync.Mutex
	now time.Time
}

func newSteppingClock() *steppingClock {
	return &steppingClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func newMemoryFileService(capacity int) (*FileServiceImpl, *memory.Adapter) {
	cfg := config.DefaultConfig()
	cfg.Retention.Capacity = capacity
	cfg.App.PublicBaseURL = "http://files.example/"

	backend := memory.New(memory.WithClock(newSteppingClock().Now))
	return NewFileService(cfg, backend), backend
}

func names(infos []domain.FileInfo) []string {
	out := make([]string, 0, len(infos))
	for _, info := range infos {
		out = append(out, info.Name)
	}
	return out
}

func TestFileService_RoundTrip(t *testing.T) {
	svc, _ := newMemoryFileService(0)
	ctx := context.Background()

	cases := []struct {
		name string
		data []byte
	}{
		{name: "plain.txt", data: []byte("hello")},
		{name: "empty.bin", data: []byte{}},
		{name: "binary.dat", data: []byte{0x00, 0xff, 0x10, 0x00, 0x7f}},
		{name: "报告.pdf", data: bytes.Repeat([]byte("z"), 1<<16)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Put(ctx, tc.name, tc.data)
			require.NoError(t, err)

			file, err := svc.Get(ctx, tc.name)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(tc.data, file.Data))
			assert.Equal(t, int64(len(tc.data)), file.Size)
		})
	}
}

func TestFileService_PutReturnsDownloadURL(t *testing.T) {
	svc, _ := newMemoryFileService(0)

	url, err := svc.Put(context.Background(), "dir%2Fmy%20report.txt", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "http://files.example/my%20report.txt", url)
}

func TestFileService_SanitizesBeforeIO(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	svc := NewFileService(config.DefaultConfig(), backend)
	ctx := context.Background()

	for _, raw := range []string{"", "/", "a/", ".", "..", "%2E%2E", "x/..", "%zz", "a%00b"} {
		_, err := svc.Put(ctx, raw, []byte("data"))
		assert.ErrorIs(t, err, port.ErrInvalidName, "put %q", raw)

		_, err = svc.Get(ctx, raw)
		assert.ErrorIs(t, err, port.ErrInvalidName, "get %q", raw)

		err = svc.Delete(ctx, raw)
		assert.ErrorIs(t, err, port.ErrInvalidName, "delete %q", raw)
	}
}

func TestFileService_TraversalReducedToFinalSegment(t *testing.T) {
	svc, backend := newMemoryFileService(0)
	ctx := context.Background()

	_, err := svc.Put(ctx, "..%2F..%2Fetc%2Fpasswd", []byte("nope"))
	require.NoError(t, err)

	_, err = backend.Stat(ctx, "passwd")
	assert.NoError(t, err)
}

func TestFileService_KeepsNamesVerbatim(t *testing.T) {
	svc, backend := newMemoryFileService(0)
	ctx := context.Background()

	for raw, want := range map[string]string{
		"%20b.txt%20": " b.txt ",
		"50%25.txt":   "50%.txt",
		"x/.hidden":   ".hidden",
		"..%2Fa%20b":  "a b",
	} {
		_, err := svc.Put(ctx, raw, []byte("x"))
		require.NoError(t, err, raw)

		_, err = backend.Stat(ctx, want)
		assert.NoError(t, err, "%q should be stored as %q", raw, want)
	}
}

func TestFileService_DeleteIsNotIdempotentSuccess(t *testing.T) {
	svc, _ := newMemoryFileService(0)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Delete(ctx, "never-written.txt"), port.ErrFileNotFound)

	_, err := svc.Put(ctx, "once.txt", []byte("1"))
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, "once.txt"))
	assert.ErrorIs(t, svc.Delete(ctx, "once.txt"), port.ErrFileNotFound)

	_, err = svc.Get(ctx, "once.txt")
	assert.ErrorIs(t, err, port.ErrFileNotFound)
}

func TestFileService_ListOrders(t *testing.T) {
	svc, _ := newMemoryFileService(0)
	ctx := context.Background()

	for _, name := range []string{"3.csv", "2.txt", "1.json"} {
		_, err := svc.Put(ctx, name, []byte(name))
		require.NoError(t, err)
	}

	byTime, err := svc.List(ctx, domain.SortByTime)
	require.NoError(t, err)
	assert.Equal(t, []string{"1.json", "2.txt", "3.csv"}, names(byTime))

	byExt, err := svc.List(ctx, domain.SortByExt)
	require.NoError(t, err)
	assert.Equal(t, []string{"3.csv", "1.json", "2.txt"}, names(byExt))
}

func TestFileService_ListExtIsCaseInsensitiveAndTieBreaksByName(t *testing.T) {
	svc, _ := newMemoryFileService(0)
	ctx := context.Background()

	for _, name := range []string{"b.TXT", "noext", "a.txt", "c.Csv"} {
		_, err := svc.Put(ctx, name, nil)
		require.NoError(t, err)
	}

	byExt, err := svc.List(ctx, domain.SortByExt)
	require.NoError(t, err)
	assert.Equal(t, []string{"noext", "c.Csv", "a.txt", "b.TXT"}, names(byExt))
}

func TestFileService_ListTimeIsNonIncreasing(t *testing.T) {
	svc, _ := newMemoryFileService(0)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		_, err := svc.Put(ctx, fmt.Sprintf("f%02d.log", (i*7)%20), []byte("x"))
		require.NoError(t, err)
	}

	infos, err := svc.List(ctx, domain.SortByTime)
	require.NoError(t, err)
	for i := 1; i < len(infos); i++ {
		assert.False(t, infos[i].CreatedAt.After(infos[i-1].CreatedAt), "position %d is newer than %d", i, i-1)
	}
}

func TestFileService_ListExcludesHidden(t *testing.T) {
	svc, backend := newMemoryFileService(0)
	ctx := context.Background()

	_, err := svc.Put(ctx, ".env", []byte("KEY=1"))
	require.NoError(t, err)
	_, err = svc.Put(ctx, "visible.txt", []byte("x"))
	require.NoError(t, err)

	file, err := svc.Get(ctx, ".env")
	require.NoError(t, err)
	assert.Equal(t, "KEY=1", string(file.Data))
	_, err = backend.Stat(ctx, ".env")
	require.NoError(t, err)

	for _, order := range []domain.SortOrder{domain.SortByTime, domain.SortByExt} {
		infos, err := svc.List(ctx, order)
		require.NoError(t, err)
		assert.Equal(t, []string{"visible.txt"}, names(infos))
	}
}

func TestFileService_RetentionKeepsNewest(t *testing.T) {
	svc, backend := newMemoryFileService(100)
	ctx := context.Background()

	for i := 0; i < 105; i++ {
		_, err := svc.Put(ctx, fmt.Sprintf("file_%d.txt", i), []byte(fmt.Sprintf("content %d", i)))
		require.NoError(t, err)

		all, err := backend.List(ctx)
		require.NoError(t, err)
		require.LessOrEqual(t, len(all), 100)
	}

	infos, err := svc.List(ctx, domain.SortByTime)
	require.NoError(t, err)
	assert.Len(t, infos, 100)

	for i := 0; i < 5; i++ {
		_, err := svc.Get(ctx, fmt.Sprintf("file_%d.txt", i))
		assert.ErrorIs(t, err, port.ErrFileNotFound, "file_%d should be evicted", i)
	}
	for i := 5; i < 105; i++ {
		_, err := svc.Get(ctx, fmt.Sprintf("file_%d.txt", i))
		assert.NoError(t, err, "file_%d should survive", i)
	}
}

func TestFileService_RetentionOverwriteDoesNotEvict(t *testing.T) {
	svc, _ := newMemoryFileService(3)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		_, err := svc.Put(ctx, name, []byte(name))
		require.NoError(t, err)
	}

	_, err := svc.Put(ctx, "a", []byte("again"))
	require.NoError(t, err)

	infos, err := svc.List(ctx, domain.SortByTime)
	require.NoError(t, err)
	// The overwrite refreshed a's creation time.
	assert.Equal(t, []string{"a", "c", "b"}, names(infos))
}

func TestFileService_RetentionTieBreaksByName(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Retention.Capacity = 2
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	backend := memory.New(memory.WithClock(func() time.Time { return fixed }))
	svc := NewFileService(cfg, backend)
	ctx := context.Background()

	for _, name := range []string{"b", "a", "c"} {
		_, err := svc.Put(ctx, name, nil)
		require.NoError(t, err)
	}

	infos, err := svc.List(ctx, domain.SortByTime)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, names(infos))
}

func TestFileService_RetentionUnderConcurrentPuts(t *testing.T) {
	svc, backend := newMemoryFileService(10)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Put(ctx, fmt.Sprintf("c%d.bin", i), []byte("x"))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	all, err := backend.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 10)
}

func TestFileService_RetentionOnDisk(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Retention.Capacity = 3
	cfg.Storage.Dir = t.TempDir()

	backend, err := disk.NewAdapter(cfg.Storage)
	require.NoError(t, err)
	svc := NewFileService(cfg, backend)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Put(ctx, fmt.Sprintf("d%d.txt", i), []byte("x"))
		require.NoError(t, err)
		time.Sleep(20 * time.Millisecond)
	}

	infos, err := svc.List(ctx, domain.SortByTime)
	require.NoError(t, err)
	assert.Equal(t, []string{"d4.txt", "d3.txt", "d2.txt"}, names(infos))
}

func TestFileService_BackendFailuresAreInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	cfg := config.DefaultConfig()
	cfg.Retention.Capacity = 0
	svc := NewFileService(cfg, backend)
	ctx := context.Background()
	diskErr := errors.New("disk full")

	backend.EXPECT().Put(gomock.Any(), "a.txt", []byte("x")).Return(diskErr)
	_, err := svc.Put(ctx, "a.txt", []byte("x"))
	assert.ErrorIs(t, err, port.ErrInternal)
	assert.Contains(t, err.Error(), "disk full")

	backend.EXPECT().Get(gomock.Any(), "a.txt").Return(nil, diskErr)
	_, err = svc.Get(ctx, "a.txt")
	assert.ErrorIs(t, err, port.ErrInternal)

	backend.EXPECT().Delete(gomock.Any(), "a.txt").Return(diskErr)
	assert.ErrorIs(t, svc.Delete(ctx, "a.txt"), port.ErrInternal)

	backend.EXPECT().List(gomock.Any()).Return(nil, diskErr)
	_, err = svc.List(ctx, domain.SortByExt)
	assert.ErrorIs(t, err, port.ErrInternal)
}

func TestFileService_RetentionFailureAbortsWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	cfg := config.DefaultConfig()
	cfg.Retention.Capacity = 1
	svc := NewFileService(cfg, backend)
	ctx := context.Background()

	old := domain.FileInfo{Name: "old.txt", CreatedAt: time.Unix(1, 0)}
	gomock.InOrder(
		backend.EXPECT().Stat(gomock.Any(), "new.txt").Return(domain.FileInfo{}, port.ErrFileNotFound),
		backend.EXPECT().List(gomock.Any()).Return([]domain.FileInfo{old}, nil),
		backend.EXPECT().Delete(gomock.Any(), "old.txt").Return(errors.New("permission denied")),
	)

	_, err := svc.Put(ctx, "new.txt", []byte("x"))
	assert.ErrorIs(t, err, port.ErrInternal)
	assert.Contains(t, err.Error(), "permission denied")
}
