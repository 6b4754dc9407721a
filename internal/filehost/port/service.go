package port

import (
	"context"

	"github.com/anthanhphan/go-file-board/internal/filehost/domain"
)

//go:generate mockgen -destination=../service/mocks/service_mock.go -package=mocks -source=service.go

// FileService defines the business logic for file operations.
type FileService interface {
	// Put stores data under the sanitized form of rawName and returns its download URL.
	Put(ctx context.Context, rawName string, data []byte) (string, error)

	// Get returns a stored file by name.
	Get(ctx context.Context, rawName string) (*domain.StoredFile, error)

	// Delete removes a stored file by name.
	Delete(ctx context.Context, rawName string) error

	// List re-scans the backend and returns visible entries in the requested order.
	List(ctx context.Context, order domain.SortOrder) ([]domain.FileInfo, error)
}

// NoticeStore persists the notice text outside the process.
type NoticeStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, content string) error
}

// Peer is the outbound half of one real-time connection.
type Peer interface {
	Send(data []byte) error
	Close() error
}

// Session is one open real-time connection as seen by the transport.
type Session interface {
	ID() int64
	// Handle processes one inbound frame. Malformed frames are logged and ignored.
	Handle(ctx context.Context, raw []byte)
	Close()
}

// NoticeBoard is the shared notice plus the sessions watching it.
type NoticeBoard interface {
	// Current returns the notice text.
	Current() string

	// Publish replaces the notice and pushes it to every open session.
	Publish(content string)

	// Open registers peer and sends it the current notice.
	Open(peer Peer) (Session, error)
}
