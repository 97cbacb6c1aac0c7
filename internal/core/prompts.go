package core

// prompts.go holds the canned texts of the echo assistant.  They stand in
// for a model-generated reply until a real backend is wired in.

const (
	// EchoTemplate quotes the user's message back.
	EchoTemplate = `Bonjour! Voici une réponse à votre message: "%s".`

	// Greeting is the reply when the request carries no message.
	Greeting = "Bonjour! Je suis votre assistant. Posez votre question."

	// ContextSuffix is appended to every reply with the session id and
	// template key the request referred to.
	ContextSuffix = " (session: %s, template: %s)"

	// NoSession and DefaultTemplate replace an absent session id and
	// template key.
	NoSession       = "-"
	DefaultTemplate = "default"
)
