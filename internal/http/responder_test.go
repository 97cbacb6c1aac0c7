package http

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"footscan-chat/pkg"
)

func TestRespondUnsupportedMethods(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodDelete, "options"} {
		t.Run(method, func(t *testing.T) {
			resp := Respond(method, []byte(`{"message":"hi"}`))
			assert.Equal(t, JSON{Status: http.StatusMethodNotAllowed, Body: pkg.ErrorBody{Error: "Method not allowed"}}, resp)
		})
	}
}

func TestRespondPreflight(t *testing.T) {
	assert.Equal(t, Empty{}, Respond(http.MethodOptions, nil))
	assert.Equal(t, Empty{}, Respond(http.MethodOptions, []byte("not json")))
}

func TestRespondInvalidBody(t *testing.T) {
	for _, body := range []string{"", "{", "not json", `{"message":"a"} trailing`, `{"message":}`} {
		t.Run(body, func(t *testing.T) {
			resp := Respond(http.MethodPost, []byte(body))
			assert.Equal(t, JSON{Status: http.StatusBadRequest, Body: pkg.ErrorBody{Error: "Invalid JSON body"}}, resp)
		})
	}
}

func TestRespondSingleReply(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "message",
			body: `{"message":"Bonjour","stream":false}`,
			want: `Bonjour! Voici une réponse à votre message: "Bonjour". (session: -, template: default)`,
		},
		{
			name: "no message",
			body: `{"stream":false}`,
			want: "Bonjour! Je suis votre assistant. Posez votre question. (session: -, template: default)",
		},
		{
			name: "blank message",
			body: `{"message":"  \n\t "}`,
			want: "Bonjour! Je suis votre assistant. Posez votre question. (session: -, template: default)",
		},
		{
			name: "message is trimmed",
			body: `{"message":"  douleur \n"}`,
			want: `Bonjour! Voici une réponse à votre message: "douleur". (session: -, template: default)`,
		},
		{
			name: "non string message",
			body: `{"message":42}`,
			want: "Bonjour! Je suis votre assistant. Posez votre question. (session: -, template: default)",
		},
		{
			name: "non object document",
			body: `[1, 2, 3]`,
			want: "Bonjour! Je suis votre assistant. Posez votre question. (session: -, template: default)",
		},
		{
			name: "null document",
			body: `null`,
			want: "Bonjour! Je suis votre assistant. Posez votre question. (session: -, template: default)",
		},
		{
			name: "session and template",
			body: `{"message":"X","session_id":"s1","template_key":"t1"}`,
			want: `Bonjour! Voici une réponse à votre message: "X". (session: s1, template: t1)`,
		},
		{
			name: "non string session",
			body: `{"session_id":7,"template_key":null}`,
			want: "Bonjour! Je suis votre assistant. Posez votre question. (session: -, template: default)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Respond(http.MethodPost, []byte(tt.body))
			assert.Equal(t, JSON{Status: http.StatusOK, Body: pkg.ChatReply{Reply: tt.want}}, resp)
		})
	}
}

func TestRespondStreamSelection(t *testing.T) {
	streaming := []string{`true`, `1`, `-2.5`, `"yes"`, `"false"`, `{}`, `[]`}
	for _, v := range streaming {
		resp := Respond(http.MethodPost, []byte(`{"stream":`+v+`}`))
		assert.IsType(t, EventStream{}, resp, "stream=%s", v)
	}
	single := []string{`false`, `0`, `-0`, `0.0`, `""`, `null`}
	for _, v := range single {
		resp := Respond(http.MethodPost, []byte(`{"stream":`+v+`}`))
		assert.IsType(t, JSON{}, resp, "stream=%s", v)
	}
}

func TestRespondStreamMatchesSingleReply(t *testing.T) {
	single := Respond(http.MethodPost, []byte(`{"message":"X","session_id":"s1","template_key":"t1","stream":false}`))
	streamed := Respond(http.MethodPost, []byte(`{"message":"X","session_id":"s1","template_key":"t1","stream":true}`))

	require.IsType(t, JSON{}, single)
	require.IsType(t, EventStream{}, streamed)
	reply := single.(JSON).Body.(pkg.ChatReply).Reply
	deltas := streamed.(EventStream).Deltas

	assert.Equal(t, reply, strings.Join(deltas, ""))
	for i, d := range deltas {
		n := len([]rune(d))
		assert.LessOrEqual(t, n, 24)
		if i < len(deltas)-1 {
			assert.Equal(t, 24, n)
		}
	}
}

func TestRespondIsDeterministic(t *testing.T) {
	body := []byte(`{"message":"même entrée","session_id":"a","template_key":"b"}`)
	first := Respond(http.MethodPost, body)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Respond(http.MethodPost, body))
	}
}
