package bridge

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// stubRequest is a request envelope as seen by the stub helper
type stubRequest struct {
	Protocol string          `json:"protocol"`
	ID       int64           `json:"id"`
	Method   string          `json:"method"`
	Params   json.RawMessage `json:"params"`
}

type stubConfig struct {
	healthy bool
	// reply, when set, builds the body of the POST reply
	reply func(req stubRequest) any
	// stall holds every POST open until the client gives up on it
	stall bool
}

// stubHelper imitates the design tool's helper process
type stubHelper struct {
	t          *testing.T
	server     *httptest.Server
	received   chan stubRequest
	events     chan string
	hangup     chan struct{}
	hangupOnce sync.Once
}

func newStub(t *testing.T, cfg stubConfig) *stubHelper {
	t.Helper()

	s := &stubHelper{
		t:        t,
		received: make(chan stubRequest, 16),
		events:   make(chan string, 16),
		hangup:   make(chan struct{}),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.GET("/health", func(c echo.Context) error {
		if !cfg.healthy {
			return c.NoContent(http.StatusServiceUnavailable)
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.POST("/messages", func(c echo.Context) error {
		var req stubRequest
		if err := c.Bind(&req); err != nil {
			return c.NoContent(http.StatusBadRequest)
		}
		s.received <- req
		if cfg.stall {
			select {
			case <-c.Request().Context().Done():
			case <-s.hangup:
			}
			return nil
		}
		if cfg.reply != nil {
			return c.JSON(http.StatusOK, cfg.reply(req))
		}
		return c.NoContent(http.StatusAccepted)
	})

	e.GET("/sse", func(c echo.Context) error {
		w := c.Response()
		w.Header().Set(echo.HeaderContentType, "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, ": stream opened\n\n")
		w.Flush()

		for {
			select {
			case data := <-s.events:
				fmt.Fprintf(w, "data: %s\n\n", data)
				w.Flush()
			case <-s.hangup:
				return nil
			case <-c.Request().Context().Done():
				return nil
			}
		}
	})

	upgrader := websocket.Upgrader{}
	e.GET("/ws", func(c echo.Context) error {
		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			return nil
		}
		defer conn.Close()

		gone := make(chan struct{})
		go func() {
			defer close(gone)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case data := <-s.events:
				if err := conn.WriteMessage(websocket.TextMessage, []byte(data)); err != nil {
					return nil
				}
			case <-s.hangup:
				return nil
			case <-gone:
				return nil
			}
		}
	})

	s.server = httptest.NewServer(e)
	t.Cleanup(func() {
		s.hangUp()
		s.server.Close()
	})
	return s
}

func (s *stubHelper) URL() string {
	return s.server.URL
}

// next waits for the next request the stub receives
func (s *stubHelper) next() stubRequest {
	s.t.Helper()
	select {
	case req := <-s.received:
		return req
	case <-time.After(2 * time.Second):
		s.t.Fatal("stub received no request")
		return stubRequest{}
	}
}

// push sends one raw event to the connected client
func (s *stubHelper) push(data string) {
	s.events <- data
}

// respond pushes a success response for id
func (s *stubHelper) respond(id int64, result any) {
	s.t.Helper()
	raw, err := json.Marshal(map[string]any{"protocol": ProtocolVersion, "id": id, "result": result})
	require.NoError(s.t, err)
	s.push(string(raw))
}

func (s *stubHelper) hangUp() {
	s.hangupOnce.Do(func() { close(s.hangup) })
}
