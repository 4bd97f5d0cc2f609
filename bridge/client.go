// Package bridge is a client for the design tool's local helper process.
//
// Requests are POSTed as JSON envelopes carrying a monotonic correlation id;
// responses arrive asynchronously on an event stream (or in the POST reply)
// and are routed back to the waiting caller by that id. A Client is an
// explicit lifecycle object: the caller connects it, shares it between
// goroutines as needed, and disconnects it.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Defaults for Options
const (
	DefaultBaseURL        = "http://127.0.0.1:3845"
	DefaultHealthPath     = "/health"
	DefaultEventsPath     = "/sse"
	DefaultMessagesPath   = "/messages"
	DefaultHealthTimeout  = 2 * time.Second
	DefaultConnectTimeout = 5 * time.Second
	DefaultRequestTimeout = 30 * time.Second
)

// maxReplyBytes bounds how much of a POST reply is read
const maxReplyBytes = 16 << 20

// State is the connection state of a Client
type State int32

const (
	Disconnected State = iota
	Connecting
	Connected
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	default:
		return "unknown"
	}
}

// Options configures a Client. Zero values fall back to the defaults above.
type Options struct {
	BaseURL      string
	HealthPath   string
	EventsPath   string
	MessagesPath string

	HTTPClient *http.Client
	// Sources opens the event stream when the health probe fails. A nil
	// factory means the environment has no event-stream support.
	Sources SourceFactory

	HealthTimeout  time.Duration
	ConnectTimeout time.Duration
	RequestTimeout time.Duration

	Logger *zap.Logger
}

// DefaultOptions returns options for the helper on its default port with
// a server-sent event source
func DefaultOptions() Options {
	return Options{
		BaseURL: DefaultBaseURL,
		Sources: &SSESource{},
	}
}

func (o Options) withDefaults() Options {
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.HealthPath == "" {
		o.HealthPath = DefaultHealthPath
	}
	if o.EventsPath == "" {
		o.EventsPath = DefaultEventsPath
	}
	if o.MessagesPath == "" {
		o.MessagesPath = DefaultMessagesPath
	}
	if o.HTTPClient == nil {
		o.HTTPClient = http.DefaultClient
	}
	if o.HealthTimeout <= 0 {
		o.HealthTimeout = DefaultHealthTimeout
	}
	if o.ConnectTimeout <= 0 {
		o.ConnectTimeout = DefaultConnectTimeout
	}
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = DefaultRequestTimeout
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

type outcome struct {
	result json.RawMessage
	err    error
}

// call is a request awaiting its response
type call struct {
	done chan outcome
	// abort cancels the request's POST if it is still in flight
	abort context.CancelFunc
}

// Client multiplexes concurrent requests over one helper connection
type Client struct {
	opts   Options
	log    *zap.Logger
	nextID atomic.Int64

	mu      sync.Mutex
	state   State
	stream  EventStream
	pending map[int64]*call
}

// NewClient creates a disconnected client
func NewClient(opts Options) *Client {
	opts = opts.withDefaults()
	return &Client{
		opts:    opts,
		log:     opts.Logger.Named("bridge"),
		pending: make(map[int64]*call),
	}
}

// State returns the current connection state
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// PendingCount returns the number of requests awaiting a response
func (c *Client) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Connect probes the health endpoint and, if that fails, opens the event
// stream. Connecting an already connected client is a no-op.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	switch c.state {
	case Connected:
		c.mu.Unlock()
		return nil
	case Connecting:
		c.mu.Unlock()
		return errors.New("design bridge connect already in progress")
	}
	c.state = Connecting
	c.mu.Unlock()

	if c.probeHealth(ctx) {
		c.setState(Connected)
		c.log.Debug("connected via health endpoint", zap.String("url", c.opts.BaseURL))
		return nil
	}

	if c.opts.Sources == nil {
		c.setState(Disconnected)
		return errors.WithHint(ErrBridgeUnavailable,
			"start the design tool's local helper or provide an event-stream source")
	}

	openCtx, cancel := context.WithTimeout(ctx, c.opts.ConnectTimeout)
	defer cancel()

	eventsURL := c.opts.BaseURL + c.opts.EventsPath
	stream, err := c.opts.Sources.Open(openCtx, eventsURL)
	if err != nil {
		c.setState(Disconnected)
		if ctx.Err() == nil && errors.Is(openCtx.Err(), context.DeadlineExceeded) {
			return errors.Wrapf(ErrRequestTimeout, "opening %s", eventsURL)
		}
		return errors.Wrapf(err, "opening %s", eventsURL)
	}

	c.mu.Lock()
	c.stream = stream
	c.state = Connected
	c.mu.Unlock()

	go c.dispatch(stream)

	c.log.Debug("connected via event stream", zap.String("url", eventsURL))
	return nil
}

func (c *Client) probeHealth(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, c.opts.HealthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, c.opts.BaseURL+c.opts.HealthPath, nil)
	if err != nil {
		return false
	}
	resp, err := c.opts.HTTPClient.Do(req)
	if err != nil {
		c.log.Debug("health probe failed", zap.Error(err))
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func (c *Client) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// dispatch routes stream events until the stream ends
func (c *Client) dispatch(stream EventStream) {
	for ev := range stream.Events() {
		c.handle(ev.Data)
	}

	c.mu.Lock()
	if c.stream != stream {
		// Disconnect already tore this stream down
		c.mu.Unlock()
		return
	}
	c.stream = nil
	c.state = Disconnected
	pending := c.pending
	c.pending = make(map[int64]*call)
	c.mu.Unlock()

	c.log.Debug("event stream ended", zap.Int("pending", len(pending)))
	failAll(pending, ErrClientClosed)
}

// handle delivers one inbound message to its waiting request. Anything
// that is not a response to a pending request is dropped.
func (c *Client) handle(data []byte) {
	if len(bytes.TrimSpace(data)) == 0 {
		return
	}

	var resp response
	if err := json.Unmarshal(data, &resp); err != nil {
		c.log.Debug("dropping non-JSON event", zap.ByteString("data", data), zap.Error(err))
		return
	}
	if resp.ID == nil {
		c.log.Debug("dropping event without id", zap.ByteString("data", data))
		return
	}

	pc, ok := c.take(*resp.ID)
	if !ok {
		c.log.Debug("dropping event with unknown id", zap.Int64("id", *resp.ID))
		return
	}

	// An error object without a message is not a failure
	if resp.Error != nil && resp.Error.Message != "" {
		pc.done <- outcome{err: resp.Error}
		return
	}
	pc.done <- outcome{result: resp.Result}
}

// take removes and returns the continuation for id. Only the caller that
// removes an entry may send on its channel.
func (c *Client) take(id int64) (*call, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	pc, ok := c.pending[id]
	if ok {
		delete(c.pending, id)
	}
	return pc, ok
}

// Request sends method with params and waits for the correlated response
func (c *Client) Request(ctx context.Context, method string, params any) (json.RawMessage, error) {
	if params == nil {
		params = struct{}{}
	}

	postCtx, abort := context.WithCancel(ctx)
	defer abort()
	pc := &call{done: make(chan outcome, 1), abort: abort}

	c.mu.Lock()
	if c.state != Connected {
		c.mu.Unlock()
		return nil, ErrNotConnected
	}
	id := c.nextID.Add(1)
	c.pending[id] = pc
	c.mu.Unlock()

	body, err := json.Marshal(request{
		Protocol: ProtocolVersion,
		ID:       id,
		Method:   method,
		Params:   params,
	})
	if err != nil {
		c.take(id)
		return nil, errors.Wrapf(err, "encoding %s request", method)
	}

	timer := time.NewTimer(c.opts.RequestTimeout)
	defer timer.Stop()

	// The POST runs alongside the wait so a stalled helper is still bound
	// by the timeout, the caller's context and Disconnect.
	posted := make(chan error, 1)
	go func() { posted <- c.post(postCtx, body) }()

	for {
		select {
		case err := <-posted:
			posted = nil
			if err == nil {
				continue
			}
			if _, ok := c.take(id); ok {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				return nil, errors.Wrapf(err, "sending %s request", method)
			}
			// Already resolved by the stream or torn down by Disconnect
			out := <-pc.done
			return out.result, out.err
		case out := <-pc.done:
			return out.result, out.err
		case <-timer.C:
			if _, ok := c.take(id); ok {
				c.log.Debug("request timed out", zap.Int64("id", id), zap.String("method", method))
				return nil, errors.Wrapf(ErrRequestTimeout, "%s (id %d)", method, id)
			}
			out := <-pc.done
			return out.result, out.err
		case <-ctx.Done():
			if _, ok := c.take(id); ok {
				return nil, ctx.Err()
			}
			out := <-pc.done
			return out.result, out.err
		}
	}
}

// post sends one envelope. A reply body holding a response envelope is
// handled like an inbound event.
func (c *Client) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+c.opts.MessagesPath, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.opts.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	reply, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return errors.Wrap(err, "reading reply")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Newf("helper returned %s", resp.Status)
	}

	if trimmed := bytes.TrimSpace(reply); len(trimmed) > 0 && trimmed[0] == '{' {
		c.handle(trimmed)
	}
	return nil
}

// Disconnect closes the event stream and fails outstanding requests with
// ErrClientClosed, aborting any POST still in flight
func (c *Client) Disconnect() error {
	c.mu.Lock()
	stream := c.stream
	c.stream = nil
	c.state = Disconnected
	pending := c.pending
	c.pending = make(map[int64]*call)
	c.mu.Unlock()

	failAll(pending, ErrClientClosed)

	if stream != nil {
		return stream.Close()
	}
	return nil
}

func failAll(pending map[int64]*call, err error) {
	for _, pc := range pending {
		pc.done <- outcome{err: err}
		pc.abort()
	}
}

// GetCode fetches generated code for a node
func (c *Client) GetCode(ctx context.Context, q CodeQuery) (json.RawMessage, error) {
	return c.Request(ctx, MethodGetCode, q)
}

// GetVariableDefinitions fetches the variable definitions bound to a node,
// or to the current selection when nodeID is empty
func (c *Client) GetVariableDefinitions(ctx context.Context, nodeID string) (json.RawMessage, error) {
	return c.Request(ctx, MethodGetVariableDefs, nodeQuery{NodeID: nodeID})
}

// GetAssets fetches the image and vector assets of a node
func (c *Client) GetAssets(ctx context.Context, nodeID string) (json.RawMessage, error) {
	return c.Request(ctx, MethodGetAssets, nodeQuery{NodeID: nodeID})
}
