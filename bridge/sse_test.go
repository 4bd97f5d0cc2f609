package bridge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEvents(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Event
	}{
		{
			name:  "single data line",
			input: "data: {\"id\":1}\n\n",
			want:  []Event{{Type: "message", Data: []byte(`{"id":1}`)}},
		},
		{
			name:  "named event with id",
			input: "event: response\nid: 42\ndata: x\n\n",
			want:  []Event{{Type: "response", ID: "42", Data: []byte("x")}},
		},
		{
			name:  "multi-line data joined by newline",
			input: "data: {\ndata: \"id\": 1\ndata: }\n\n",
			want:  []Event{{Type: "message", Data: []byte("{\n\"id\": 1\n}")}},
		},
		{
			name:  "comments and empty blocks are skipped",
			input: ": stream opened\n\n\n: ping\ndata: a\n\n",
			want:  []Event{{Type: "message", Data: []byte("a")}},
		},
		{
			name:  "no space after colon",
			input: "data:tight\n\n",
			want:  []Event{{Type: "message", Data: []byte("tight")}},
		},
		{
			name:  "trailing event without blank line",
			input: "data: first\n\ndata: last",
			want: []Event{
				{Type: "message", Data: []byte("first")},
				{Type: "message", Data: []byte("last")},
			},
		},
		{
			name:  "crlf line endings",
			input: "data: a\r\n\r\n",
			want:  []Event{{Type: "message", Data: []byte("a")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []Event
			parseEvents(strings.NewReader(tt.input), func(ev Event) bool {
				got = append(got, ev)
				return true
			})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEventsStopsWhenEmitDeclines(t *testing.T) {
	var got int
	parseEvents(strings.NewReader("data: a\n\ndata: b\n\n"), func(Event) bool {
		got++
		return false
	})
	assert.Equal(t, 1, got)
}

func TestWebSocketURL(t *testing.T) {
	assert.Equal(t, "ws://127.0.0.1:3845/ws", websocketURL("http://127.0.0.1:3845/ws"))
	assert.Equal(t, "wss://example.com/ws", websocketURL("https://example.com/ws"))
	assert.Equal(t, "ws://already", websocketURL("ws://already"))
}
