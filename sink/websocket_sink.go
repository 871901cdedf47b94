package sink

import (
	"chat-core/errors"
	"chat-core/projection"
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// WebSocketSink is one connected client. Consume only queues the encoded
// envelope; a dedicated write loop owns the connection.
type WebSocketSink struct {
	ClientID string
	UserID   uuid.UUID

	log    *slog.Logger
	conn   *websocket.Conn
	queue  chan []byte
	done   chan struct{}
	closed atomic.Bool
}

func NewWebSocketSink(log *slog.Logger, clientID string, userID uuid.UUID, conn *websocket.Conn, bufferSize int) *WebSocketSink {
	return &WebSocketSink{
		ClientID: clientID,
		UserID:   userID,
		log:      log.With("client_id", clientID, "user_id", userID),
		conn:     conn,
		queue:    make(chan []byte, bufferSize),
		done:     make(chan struct{}),
	}
}

// Consume waits for room in the send queue until ctx expires. A client that
// went away reports errors.ErrClientGone.
func (s *WebSocketSink) Consume(ctx context.Context, e projection.Envelope) error {
	if s.closed.Load() {
		return errors.ErrClientGone
	}
	payload, err := e.Encode()
	if err != nil {
		return err
	}
	select {
	case s.queue <- payload:
		return nil
	case <-s.done:
		return errors.ErrClientGone
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *WebSocketSink) Done() <-chan struct{} {
	return s.done
}

// Start launches the write loop.
func (s *WebSocketSink) Start() {
	go s.writeLoop()
}

// ReadLoop blocks until the client disconnects. Incoming frames are
// ignored: clients only listen.
func (s *WebSocketSink) ReadLoop() {
	defer s.Close()
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warn("Websocket read failed", "error", err)
			}
			return
		}
	}
}

func (s *WebSocketSink) Close() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}
	close(s.done)
	deadline := time.Now().Add(time.Second)
	_ = s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "server closing"), deadline)
	_ = s.conn.Close()
	s.log.Debug("Websocket closed")
}

func (s *WebSocketSink) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.Close()
	}()

	for {
		select {
		case payload := <-s.queue:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				s.log.Warn("Websocket write failed", "error", err)
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.log.Debug("Websocket ping failed", "error", err)
				return
			}
		case <-s.done:
			return
		}
	}
}
