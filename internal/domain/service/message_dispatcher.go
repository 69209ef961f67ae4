package service

import (
	"context"

	"passport/internal/domain/entity"
)

// Message is one outbound delivery handed to a channel provider.
type Message struct {
	Channel entity.ChallengeChannel // phone or email.
	To      string                  // Destination address or E.164 number.
	Subject string                  // Email subject; ignored for SMS.
	Body    string                  // Message body; for challenges this is the code (or a URL embedding it).
}

// MessageDispatcher sends outbound messages through the external delivery
// provider. Dispatch must respect the context deadline; the caller treats a
// failure as transient and retries once before surfacing ServiceUnavailable.
type MessageDispatcher interface {
	Dispatch(ctx context.Context, msg *Message) error
}
