package http

import "net/http"

// corsHeaders are attached to every response of the chat endpoint so a
// browser caller can read errors as well as replies.
var corsHeaders = map[string]string{
	"access-control-allow-origin":  "*",
	"access-control-allow-headers": "authorization, x-client-info, apikey, content-type",
	"access-control-allow-methods": "POST, OPTIONS",
	"access-control-max-age":       "86400",
}

var jsonHeaders = map[string]string{
	"content-type": "application/json; charset=utf-8",
}

var streamHeaders = map[string]string{
	"content-type":  "text/event-stream; charset=utf-8",
	"cache-control": "no-cache",
	"connection":    "keep-alive",
}

// mergeHeaders folds layers into one header set.  Layers are applied in
// order, so a key in a later layer replaces the same key from an earlier
// one regardless of spelling.
func mergeHeaders(layers ...map[string]string) http.Header {
	merged := make(http.Header)
	for _, layer := range layers {
		for key, value := range layer {
			merged.Set(key, value)
		}
	}
	return merged
}

// setHeaders merges layers and copies the result onto w.  Headers already
// present on w (such as the request id) are kept unless a layer sets them.
func setHeaders(w http.ResponseWriter, layers ...map[string]string) {
	for key, values := range mergeHeaders(layers...) {
		w.Header()[key] = values
	}
}
