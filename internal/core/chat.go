package core

import (
	"fmt"

	"footscan-chat/pkg"
)

// Reply synthesises the assistant reply for a request.  It is a pure
// function of the message, session id and template key: the same request
// always yields the same text.
func Reply(req pkg.ChatRequest) string {
	base := Greeting
	if req.Message != "" {
		base = fmt.Sprintf(EchoTemplate, req.Message)
	}
	session := NoSession
	if req.SessionID != nil {
		session = *req.SessionID
	}
	template := DefaultTemplate
	if req.TemplateKey != nil {
		template = *req.TemplateKey
	}
	return base + fmt.Sprintf(ContextSuffix, session, template)
}
