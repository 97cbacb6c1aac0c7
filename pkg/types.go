package pkg

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ChatRequest is the body accepted by the chat endpoint.  Decoding is
// lenient: a field of the wrong type falls back to its absent state instead
// of failing the request.  Only a body that is not JSON at all is rejected.
type ChatRequest struct {
	// Message is trimmed on decode; empty means "no message".
	Message string `json:"message,omitempty"`
	// Stream selects the event-stream response mode.
	Stream bool `json:"stream,omitempty"`
	// SessionID and TemplateKey are nil when absent, null or not a string.
	SessionID   *string `json:"session_id,omitempty"`
	TemplateKey *string `json:"template_key,omitempty"`
}

// UnmarshalJSON decodes any JSON document into a ChatRequest.  Documents
// that are not objects yield a zero request.
func (r *ChatRequest) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return err
	}
	*r = ChatRequest{}
	fields, ok := doc.(map[string]any)
	if !ok {
		return nil
	}
	if msg, ok := fields["message"].(string); ok {
		r.Message = strings.TrimSpace(msg)
	}
	r.Stream = Truthy(fields["stream"])
	r.SessionID = stringField(fields["session_id"])
	r.TemplateKey = stringField(fields["template_key"])
	return nil
}

// stringField returns v when it is a JSON string.  Numbers, booleans and
// containers are not coerced; they count as absent.
func stringField(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

// Truthy reports whether a decoded JSON value counts as true the way a
// browser client would coerce it: false, 0, "" and null are false,
// everything else (including empty arrays and objects) is true.
func Truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case json.Number:
		f, _ := v.Float64()
		return f != 0
	case float64:
		return v != 0
	case string:
		return v != ""
	default:
		return true
	}
}

// ChatReply is the non-streaming response body.
type ChatReply struct {
	Reply string `json:"reply"`
}

// Delta is the payload of one event-stream data frame.
type Delta struct {
	Delta string `json:"delta"`
}

// ErrorBody is returned for every rejected request.  It never carries
// internal detail.
type ErrorBody struct {
	Error string `json:"error"`
}
