package bridge

import "context"

// Event is one message received on an event stream
type Event struct {
	Type string // "message" unless the server names it
	ID   string
	Data []byte
}

// EventStream is an open subscription. Events is closed when the stream
// ends, either because the server hung up or Close was called.
type EventStream interface {
	Events() <-chan Event
	Close() error
}

// SourceFactory opens event streams. Open returns once the stream has
// signalled that it is open, or with the error that prevented it.
type SourceFactory interface {
	Open(ctx context.Context, url string) (EventStream, error)
}

// SourceFunc adapts a function to SourceFactory
type SourceFunc func(ctx context.Context, url string) (EventStream, error)

// Open calls f
func (f SourceFunc) Open(ctx context.Context, url string) (EventStream, error) {
	return f(ctx, url)
}
