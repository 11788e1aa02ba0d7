package mail

import "context"

// Message is one outbound HTML email.
type Message struct {
	Subject string
	HTML    string
	To      []string
}

// Client sends mail through an external provider. The interface keeps the
// reminder logic decoupled from the concrete mail API.
type Client interface {
	Send(ctx context.Context, msg Message) error
}
