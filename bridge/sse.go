package bridge

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
)

const maxEventLine = 1 << 20

// SSESource opens server-sent event streams over HTTP
type SSESource struct {
	HTTPClient *http.Client
}

// Open issues the subscription request and returns once the server has
// answered with a 200 event-stream response
func (s *SSESource) Open(ctx context.Context, url string) (EventStream, error) {
	client := s.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	// The stream outlives ctx, which only bounds the open handshake
	streamCtx, cancel := context.WithCancel(context.Background())
	req, err := http.NewRequestWithContext(streamCtx, http.MethodGet, url, nil)
	if err != nil {
		cancel()
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	type opened struct {
		resp *http.Response
		err  error
	}
	done := make(chan opened, 1)
	go func() {
		resp, err := client.Do(req)
		done <- opened{resp, err}
	}()

	var resp *http.Response
	select {
	case <-ctx.Done():
		cancel()
		if o := <-done; o.resp != nil {
			o.resp.Body.Close()
		}
		return nil, ctx.Err()
	case o := <-done:
		if o.err != nil {
			cancel()
			return nil, o.err
		}
		resp = o.resp
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		cancel()
		return nil, errors.Newf("event stream returned %s", resp.Status)
	}

	stream := &sseStream{
		body:   resp.Body,
		cancel: cancel,
		events: make(chan Event),
		closed: make(chan struct{}),
	}
	go stream.read()
	return stream, nil
}

type sseStream struct {
	body      io.ReadCloser
	cancel    context.CancelFunc
	events    chan Event
	closed    chan struct{}
	closeOnce sync.Once
}

func (s *sseStream) Events() <-chan Event {
	return s.events
}

func (s *sseStream) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.closed)
		s.cancel()
		err = s.body.Close()
	})
	return err
}

func (s *sseStream) read() {
	defer close(s.events)
	defer s.cancel()

	parseEvents(s.body, func(ev Event) bool {
		select {
		case s.events <- ev:
			return true
		case <-s.closed:
			return false
		}
	})
}

// parseEvents reads the text/event-stream framing from r and calls emit for
// each complete event until r ends or emit returns false
func parseEvents(r io.Reader, emit func(Event) bool) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventLine)

	var (
		evType  string
		evID    string
		data    bytes.Buffer
		hasData bool
	)

	flush := func() bool {
		if !hasData {
			evType = ""
			return true
		}
		ev := Event{Type: evType, ID: evID, Data: bytes.Clone(data.Bytes())}
		if ev.Type == "" {
			ev.Type = "message"
		}
		evType = ""
		data.Reset()
		hasData = false
		return emit(ev)
	}

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			if !flush() {
				return
			}
			continue
		}
		if strings.HasPrefix(line, ":") {
			continue
		}

		field, value, _ := strings.Cut(line, ":")
		value = strings.TrimPrefix(value, " ")

		switch field {
		case "event":
			evType = value
		case "data":
			if hasData {
				data.WriteByte('\n')
			}
			data.WriteString(value)
			hasData = true
		case "id":
			evID = value
		}
	}
	flush()
}
