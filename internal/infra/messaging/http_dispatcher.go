// Package messaging delivers one-time codes through an external HTTP provider.
package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"passport/config"
	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/service"
)

const defaultDispatchTimeout = 10 * time.Second

// httpDispatcher implements MessageDispatcher by POSTing each message to the
// configured delivery endpoint. The endpoint fans out to the actual SMS/email
// gateway; this process never talks to carriers directly.
type httpDispatcher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// deliveryRequest is the wire format accepted by the delivery endpoint.
type deliveryRequest struct {
	Channel string `json:"channel"`
	To      string `json:"to"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body"`
}

// NewHTTPDispatcher is the constructor for httpDispatcher.
func NewHTTPDispatcher(cfg *config.Config, logger *slog.Logger) (service.MessageDispatcher, error) {
	if cfg.Messaging == nil || cfg.Messaging.Endpoint == "" {
		return nil, errors.New("messaging endpoint must be configured")
	}

	timeout := cfg.Messaging.Timeout
	if timeout <= 0 {
		timeout = defaultDispatchTimeout
	}

	return &httpDispatcher{
		endpoint:   cfg.Messaging.Endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// Dispatch sends one message to the delivery endpoint.
// The message body carries the secret, so it is never logged.
func (d *httpDispatcher) Dispatch(ctx context.Context, msg *service.Message) error {
	body, err := json.Marshal(deliveryRequest{
		Channel: string(msg.Channel),
		To:      msg.To,
		Subject: msg.Subject,
		Body:    msg.Body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Propagate X-Request-Id for tracing across the delivery hop.
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("delivery endpoint returned non-success status: %d", resp.StatusCode)
	}

	d.logger.Info("[Messaging] Message dispatched",
		slog.String("channel", string(msg.Channel)),
	)

	return nil
}
