package http

import (
	"encoding/json"
	"net/http"

	"footscan-chat/internal/core"
	"footscan-chat/pkg"
)

// The two rejections of the chat endpoint.  Neither carries internal detail.
var (
	methodNotAllowed = JSON{Status: http.StatusMethodNotAllowed, Body: pkg.ErrorBody{Error: "Method not allowed"}}
	invalidBody      = JSON{Status: http.StatusBadRequest, Body: pkg.ErrorBody{Error: "Invalid JSON body"}}
)

// Respond decides the response to a chat request from its method and raw
// body alone.  It performs no I/O, so the same input always gives the same
// Response.
func Respond(method string, body []byte) Response {
	switch method {
	case http.MethodOptions:
		return Empty{}
	case http.MethodPost:
	default:
		return methodNotAllowed
	}

	var req pkg.ChatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return invalidBody
	}

	reply := core.Reply(req)
	if !req.Stream {
		return JSON{Status: http.StatusOK, Body: pkg.ChatReply{Reply: reply}}
	}
	return EventStream{Deltas: core.Split(reply, core.ChunkWidth)}
}
