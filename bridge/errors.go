package bridge

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

var (
	// ErrBridgeUnavailable means neither the health probe nor an event
	// stream could establish a connection.
	ErrBridgeUnavailable = errors.New("design bridge unavailable")
	// ErrNotConnected is returned by operations invoked before Connect succeeded.
	ErrNotConnected = errors.New("design bridge not connected")
	// ErrRequestTimeout is returned when a request or the stream open ran out of time.
	ErrRequestTimeout = errors.New("design bridge request timed out")
	// ErrClientClosed fails requests still outstanding when the client disconnects.
	ErrClientClosed = errors.New("design bridge client closed")
)

// RemoteError is an error body returned by the helper process. Code is
// kept raw: helpers send numeric codes and string codes alike.
type RemoteError struct {
	Code    json.RawMessage `json:"code,omitempty"`
	Message string          `json:"message"`
}

func (e *RemoteError) Error() string {
	return e.Message
}

