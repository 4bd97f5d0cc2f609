package bridge

import "encoding/json"

// ProtocolVersion is sent in every request envelope
const ProtocolVersion = "2.0"

// Method names understood by the helper process
const (
	MethodGetCode         = "get_code"
	MethodGetVariableDefs = "get_variable_defs"
	MethodGetAssets       = "get_assets"
)

// request is the outbound envelope: {"protocol":"2.0","id":1,"method":"get_code","params":{}}
type request struct {
	Protocol string `json:"protocol"`
	ID       int64  `json:"id"`
	Method   string `json:"method"`
	Params   any    `json:"params"`
}

// response is the inbound envelope. ID is a pointer so a missing id can be
// told apart from id 0.
type response struct {
	Protocol string          `json:"protocol,omitempty"`
	ID       *int64          `json:"id"`
	Result   json.RawMessage `json:"result,omitempty"`
	Error    *RemoteError    `json:"error,omitempty"`
}

// CodeQuery selects the node and output format for GetCode
type CodeQuery struct {
	NodeID string `json:"nodeId,omitempty"`
	Format string `json:"format,omitempty"` // "react", "html", ...
}

type nodeQuery struct {
	NodeID string `json:"nodeId,omitempty"`
}
