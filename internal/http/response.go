package http

import (
	"bytes"
	"encoding/json"
)

// Response is what the chat responder decided to send.  It is one of
// Empty, JSON or EventStream.
type Response interface {
	isResponse()
}

// Empty is a 200 response without body, used for pre-flight requests.
type Empty struct{}

// JSON is a single JSON document sent with Status.
type JSON struct {
	Status int
	Body   any
}

// EventStream sends Deltas as paced text/event-stream data frames followed
// by the [DONE] sentinel.
type EventStream struct {
	Deltas []string
}

func (Empty) isResponse()       {}
func (JSON) isResponse()        {}
func (EventStream) isResponse() {}

// marshalJSON encodes v without HTML escaping so '<', '>' and '&' reach the
// client verbatim, and without the encoder's trailing newline.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
