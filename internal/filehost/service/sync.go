package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/anthanhphan/go-file-board/internal/filehost/domain"
	"github.com/anthanhphan/go-file-board/internal/filehost/port"
	"github.com/anthanhphan/gosdk/logger"
)

// SyncService runs the notice-board protocol on top of the Hub and the Notice.
type SyncService struct {
	notice *Notice
	hub    *Hub

	// publishMu makes "write notice, queue broadcast" one step, and makes
	// "read notice, register connection" one step, so every peer's last
	// observed update matches the stored value.
	publishMu sync.Mutex
}

// Ensure SyncService implements port.NoticeBoard.
var _ port.NoticeBoard = (*SyncService)(nil)

func NewSyncService(notice *Notice, hub *Hub) *SyncService {
	return &SyncService{notice: notice, hub: hub}
}

// Current returns the notice text.
func (s *SyncService) Current() string {
	return s.notice.Read()
}

// Publish replaces the notice and pushes it to every open connection.
func (s *SyncService) Publish(content string) {
	msg := mustEncode(domain.NewMessage(domain.MessageUpdate, content))

	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	s.notice.Write(content)
	s.hub.Broadcast(msg)
}

// Open registers peer with the hub; the peer's first message is the current notice.
// The ID is reserved before publishMu so a slow ID clock never holds up publishes.
func (s *SyncService) Open(peer port.Peer) (port.Session, error) {
	id, err := s.hub.NextID()
	if err != nil {
		return nil, fmt.Errorf("reserve connection id: %w", err)
	}

	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	initMsg := mustEncode(domain.NewMessage(domain.MessageInit, s.notice.Read()))
	if err := s.hub.Attach(id, peer, initMsg); err != nil {
		return nil, fmt.Errorf("register connection: %w", err)
	}
	return &session{id: id, svc: s}, nil
}

// update stores content and forwards it to everyone but the sender.
func (s *SyncService) update(from int64, content string) {
	msg := mustEncode(domain.NewMessage(domain.MessageUpdate, content))

	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	s.notice.Write(content)
	s.hub.BroadcastExcept(msg, from)
}

// reset clears the notice and echoes the empty value to everyone, sender included.
func (s *SyncService) reset() {
	s.Publish("")
}

// session is the per-connection protocol state. It exists only while Open.
type session struct {
	id     int64
	svc    *SyncService
	closed sync.Once
}

func (s *session) ID() int64 {
	return s.id
}

// Handle decodes and applies one inbound frame.
func (s *session) Handle(ctx context.Context, raw []byte) {
	var msg domain.Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		logger.Warnw("Malformed frame ignored", "conn_id", s.id, "error", err.Error())
		return
	}

	switch msg.Type {
	case domain.MessageUpdate:
		if msg.Content == nil {
			logger.Warnw("Update without content ignored", "conn_id", s.id)
			return
		}
		s.svc.update(s.id, *msg.Content)
		logger.Debugw("Notice updated", "conn_id", s.id, "length", len(*msg.Content))
	case domain.MessageReset:
		s.svc.reset()
		logger.Debugw("Notice reset", "conn_id", s.id)
	default:
		logger.Warnw("Unknown frame type ignored", "conn_id", s.id, "type", string(msg.Type))
	}
}

// Close moves the session to Closed and removes it from the hub.
func (s *session) Close() {
	s.closed.Do(func() {
		s.svc.hub.Unregister(s.id)
	})
}

// mustEncode marshals a Message; the type has no fields that can fail to encode.
func mustEncode(msg domain.Message) []byte {
	data, err := json.Marshal(msg)
	if err != nil {
		panic(fmt.Sprintf("encode %s message: %v", msg.Type, err))
	}
	return data
}
