package service

import (
	"errors"
	"sync"

	"github.com/anthanhphan/go-file-board/internal/filehost/port"
	"github.com/anthanhphan/gosdk/logger"
)

var ErrHubClosed = errors.New("hub is closed")

const defaultOutboxSize = 64

// IDGenerator defines ID generation capability.
type IDGenerator interface {
	Next() (int64, error)
}

// client is one Open connection owned by the Hub.
// outbox is drained by a single writer goroutine, which keeps per-connection order.
type client struct {
	id     int64
	peer   port.Peer
	outbox chan []byte
	done   chan struct{}
	once   sync.Once
}

// Hub tracks open real-time connections and fans messages out to them.
// Broadcasts iterate a snapshot of the membership and never wait on a peer.
type Hub struct {
	mu      sync.RWMutex
	clients map[int64]*client
	closed  bool

	ids        IDGenerator
	outboxSize int
	writers    sync.WaitGroup
}

// NewHub creates an empty hub. outboxSize bounds the messages queued per connection.
func NewHub(ids IDGenerator, outboxSize int) *Hub {
	if outboxSize <= 0 {
		outboxSize = defaultOutboxSize
	}
	return &Hub{
		clients:    make(map[int64]*client),
		ids:        ids,
		outboxSize: outboxSize,
	}
}

// Register adds peer to the live set with first queued as its first message.
func (h *Hub) Register(peer port.Peer, first []byte) (int64, error) {
	id, err := h.NextID()
	if err != nil {
		return 0, err
	}
	if err := h.Attach(id, peer, first); err != nil {
		return 0, err
	}
	return id, nil
}

// NextID reserves a connection ID. It may be slow (the ID clock can be remote),
// so callers take it before entering any critical section.
func (h *Hub) NextID() (int64, error) {
	return h.ids.Next()
}

// Attach adds peer under a reserved id with first queued as its first message.
func (h *Hub) Attach(id int64, peer port.Peer, first []byte) error {
	c := &client{
		id:     id,
		peer:   peer,
		outbox: make(chan []byte, h.outboxSize),
		done:   make(chan struct{}),
	}
	c.outbox <- first

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return ErrHubClosed
	}
	h.clients[id] = c
	h.writers.Add(1)
	h.mu.Unlock()

	go h.writeLoop(c)

	logger.Infow("Connection opened", "conn_id", id, "open_connections", h.Count())
	return nil
}

// Unregister removes a connection and closes its peer. Unknown IDs are ignored.
func (h *Hub) Unregister(id int64) {
	h.mu.Lock()
	c, ok := h.clients[id]
	delete(h.clients, id)
	h.mu.Unlock()

	if !ok {
		return
	}
	c.shutdown()
	logger.Infow("Connection closed", "conn_id", id, "open_connections", h.Count())
}

// Broadcast queues msg for every open connection.
func (h *Hub) Broadcast(msg []byte) {
	for _, c := range h.snapshot() {
		h.deliver(c, msg)
	}
}

// BroadcastExcept queues msg for every open connection except the one with id.
func (h *Hub) BroadcastExcept(msg []byte, id int64) {
	for _, c := range h.snapshot() {
		if c.id == id {
			continue
		}
		h.deliver(c, msg)
	}
}

// Count returns the number of open connections.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every connection and waits for their writers to exit.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*client, 0, len(h.clients))
	for id, c := range h.clients {
		clients = append(clients, c)
		delete(h.clients, id)
	}
	h.mu.Unlock()

	for _, c := range clients {
		c.shutdown()
	}
	h.writers.Wait()
	logger.Infow("Hub closed", "disconnected", len(clients))
}

// snapshot copies the membership so iteration is safe against concurrent register/unregister.
func (h *Hub) snapshot() []*client {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		out = append(out, c)
	}
	return out
}

// deliver queues msg without blocking. A connection that cannot keep up is dropped;
// it reconciles through the init message when it reconnects.
func (h *Hub) deliver(c *client, msg []byte) {
	select {
	case <-c.done:
		return
	default:
	}

	select {
	case c.outbox <- msg:
	default:
		logger.Warnw("Outbox full, dropping slow connection", "conn_id", c.id, "outbox_size", h.outboxSize)
		h.Unregister(c.id)
	}
}

// writeLoop sends queued messages to the peer in FIFO order until the connection closes.
func (h *Hub) writeLoop(c *client) {
	defer h.writers.Done()

	for {
		select {
		case <-c.done:
			return
		case msg := <-c.outbox:
			if err := c.peer.Send(msg); err != nil {
				logger.Warnw("Delivery failed, closing connection", "conn_id", c.id, "error", err.Error())
				h.Unregister(c.id)
				return
			}
		}
	}
}

func (c *client) shutdown() {
	c.once.Do(func() {
		close(c.done)
		if err := c.peer.Close(); err != nil {
			logger.Debugw("Peer close failed", "conn_id", c.id, "error", err.Error())
		}
	})
}
