package server

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/loom-ui/loom/pkg/protocol"
	"github.com/loom-ui/loom/pkg/reconcile"
)

const (
	// sendQueueSize is the per-session outbound frame queue depth.
	sendQueueSize = 64

	writeTimeout = 10 * time.Second
	pingInterval = 30 * time.Second
)

// Session is one connected client: a websocket connection plus its own
// remote document, container, and reconciliation engine. Each session
// renders independently, so per-session state in component data works
// without cross-talk.
type Session struct {
	ID string

	conn      *websocket.Conn
	send      chan []byte
	closeOnce sync.Once

	// renderMu serializes render passes and flushes for this session.
	renderMu  sync.Mutex
	doc       *RemoteDocument
	engine    *reconcile.Engine
	container *RemoteNode
	seq       uint64
}

func newSessionID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}

func newSession(conn *websocket.Conn) *Session {
	doc := NewRemoteDocument()
	container := doc.NewContainer("root")
	return &Session{
		ID:        newSessionID(),
		conn:      conn,
		send:      make(chan []byte, sendQueueSize),
		doc:       doc,
		engine:    reconcile.New(doc),
		container: container,
	}
}

// queue enqueues an encoded frame for the write pump, dropping it if the
// session's queue is full or closed.
func (s *Session) queue(frame *protocol.Frame) bool {
	defer func() { recover() }() // send on closed channel loses the race
	select {
	case s.send <- frame.Encode():
		return true
	default:
		return false
	}
}

// close tears down the connection. Safe to call multiple times.
func (s *Session) close() {
	s.closeOnce.Do(func() {
		close(s.send)
		s.conn.Close()
	})
}

// writePump drains the send queue onto the websocket, interleaving pings.
// It exits when the queue closes or a write fails.
func (s *Session) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	var pingSeq uint64
	for {
		select {
		case msg, ok := <-s.send:
			if !ok {
				return
			}
			s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := s.conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			pingSeq++
			ping := protocol.NewFrame(protocol.FrameControl,
				protocol.EncodeControl(&protocol.Control{Type: protocol.ControlPing, Seq: pingSeq}))
			s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := s.conn.WriteMessage(websocket.BinaryMessage, ping.Encode()); err != nil {
				return
			}
		}
	}
}

// readPump consumes inbound frames, answering pings. Any read error ends
// the session.
func (s *Session) readPump(onClose func()) {
	defer onClose()

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			return
		}

		frame, err := protocol.DecodeFrame(data)
		if err != nil {
			continue
		}
		if frame.Type != protocol.FrameControl {
			continue
		}

		ctrl, err := protocol.DecodeControl(frame.Payload)
		if err != nil || ctrl.Type != protocol.ControlPing {
			continue
		}
		pong := protocol.NewFrame(protocol.FrameControl,
			protocol.EncodeControl(&protocol.Control{Type: protocol.ControlPong, Seq: ctrl.Seq}))
		s.queue(pong)
	}
}
