package messaging

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passport/config"
	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	"passport/internal/domain/service"
)

func testMessagingConfig(endpoint string) *config.Config {
	cfg := &config.Config{}
	cfg.Messaging = &config.MessagingConfig{
		Endpoint: endpoint,
		Timeout:  2 * time.Second,
	}

	return cfg
}

func TestHTTPDispatcher_Dispatch(t *testing.T) {
	var received deliveryRequest
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		requestID = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dispatcher, err := NewHTTPDispatcher(testMessagingConfig(server.URL), slog.Default())
	require.NoError(t, err)

	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	err = dispatcher.Dispatch(ctx, &service.Message{
		Channel: entity.ChallengeChannelPhone,
		To:      "+15551234567",
		Body:    "123456",
	})
	require.NoError(t, err)

	assert.Equal(t, "phone", received.Channel)
	assert.Equal(t, "+15551234567", received.To)
	assert.Equal(t, "123456", received.Body)
	assert.Equal(t, "req-42", requestID)
}

func TestHTTPDispatcher_DispatchNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	dispatcher, err := NewHTTPDispatcher(testMessagingConfig(server.URL), slog.Default())
	require.NoError(t, err)

	err = dispatcher.Dispatch(context.Background(), &service.Message{
		Channel: entity.ChallengeChannelPhone,
		To:      "+15551234567",
		Body:    "123456",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "non-success status")
}

func TestHTTPDispatcher_MissingEndpoint(t *testing.T) {
	dispatcher, err := NewHTTPDispatcher(&config.Config{}, slog.Default())
	assert.Error(t, err)
	assert.Nil(t, dispatcher)
}
