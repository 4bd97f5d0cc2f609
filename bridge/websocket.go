package bridge

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocketSource opens event streams over a websocket. Each text message
// is one event; http(s) URLs are dialed as ws(s).
type WebSocketSource struct {
	Dialer *websocket.Dialer
}

// Open dials url and returns once the handshake completed
func (s *WebSocketSource) Open(ctx context.Context, url string) (EventStream, error) {
	dialer := s.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}

	conn, _, err := dialer.DialContext(ctx, websocketURL(url), nil)
	if err != nil {
		return nil, err
	}

	stream := &wsStream{
		conn:   conn,
		events: make(chan Event),
		closed: make(chan struct{}),
	}
	go stream.read()
	return stream, nil
}

func websocketURL(url string) string {
	switch {
	case strings.HasPrefix(url, "http://"):
		return "ws://" + strings.TrimPrefix(url, "http://")
	case strings.HasPrefix(url, "https://"):
		return "wss://" + strings.TrimPrefix(url, "https://")
	default:
		return url
	}
}

type wsStream struct {
	conn      *websocket.Conn
	events    chan Event
	closed    chan struct{}
	closeOnce sync.Once
}

func (s *wsStream) Events() <-chan Event {
	return s.events
}

func (s *wsStream) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.closed)
		_ = s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
		err = s.conn.Close()
	})
	return err
}

func (s *wsStream) read() {
	defer close(s.events)

	for {
		msgType, data, err := s.conn.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}
		select {
		case s.events <- Event{Type: "message", Data: data}:
		case <-s.closed:
			return
		}
	}
}
