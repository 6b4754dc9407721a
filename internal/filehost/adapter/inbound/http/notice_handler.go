package http_handler

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"

	sdklogger "github.com/anthanhphan/gosdk/logger"
	fastws "github.com/fasthttp/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

var errPeerClosed = errors.New("peer closed")

type noticeRequest struct {
	Content *string `json:"content"`
}

func (s *Server) handleGetNotice(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"content": s.board.Current()})
}

func (s *Server) handlePostNotice(c *fiber.Ctx) error {
	var req noticeRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return s.sendJSONError(c, fiber.StatusBadRequest, "Invalid JSON body")
	}
	if req.Content == nil {
		return s.sendJSONError(c, fiber.StatusBadRequest, "Missing 'content' field")
	}

	s.board.Publish(*req.Content)
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) requireUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return s.sendJSONError(c, fiber.StatusUpgradeRequired, "Websocket upgrade required")
}

// handleSocket runs the read side of one real-time connection.
// Writes are owned by the hub's writer goroutine through wsPeer.
func (s *Server) handleSocket(conn *websocket.Conn) {
	conn.SetReadLimit(int64(s.cfg.Server.BodyLimit))

	peer := &wsPeer{conn: conn.Conn}
	session, err := s.board.Open(peer)
	if err != nil {
		sdklogger.Warnw("Rejecting websocket connection", "remote_addr", conn.RemoteAddr().String(), "error", err.Error())
		_ = peer.Close()
		return
	}
	defer func() {
		session.Close()
		// conn is recycled once this handler returns.
		peer.drain()
	}()

	ctx := context.Background()
	for {
		mt, data, err := conn.ReadMessage()
		if err != nil {
			if fastws.IsUnexpectedCloseError(err, fastws.CloseNormalClosure, fastws.CloseGoingAway) {
				sdklogger.Debugw("Websocket read failed", "conn_id", session.ID(), "error", err.Error())
			}
			return
		}
		if mt != fastws.TextMessage {
			sdklogger.Debugw("Non-text frame ignored", "conn_id", session.ID(), "message_type", mt)
			continue
		}
		session.Handle(ctx, data)
	}
}

// wsPeer adapts a websocket connection to port.Peer. It holds the underlying
// connection directly because the fiber wrapper is pooled.
type wsPeer struct {
	conn    *fastws.Conn
	writeMu sync.Mutex
	closed  atomic.Bool
}

func (p *wsPeer) Send(data []byte) error {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	if p.closed.Load() {
		return errPeerClosed
	}
	return p.conn.WriteMessage(fastws.TextMessage, data)
}

// Close does not wait on writeMu; closing the socket unblocks a stuck write.
func (p *wsPeer) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	return p.conn.Close()
}

// drain waits for an in-flight Send to finish. Later sends fail fast.
func (p *wsPeer) drain() {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()
}
