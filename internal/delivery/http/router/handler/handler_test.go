package handler

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passport/internal/domain/entity"
)

func TestNewSessionView_OAuth2CarriesProviderTokens(t *testing.T) {
	expiry := time.Now().Add(time.Hour)
	session := &entity.Session{
		ID:                        uuid.New(),
		AccountID:                 uuid.New(),
		Provider:                  entity.OAuth2SessionProvider("github"),
		SecretHash:                "secret-hash",
		ProviderAccessToken:       "access-token",
		ProviderRefreshToken:      "refresh-token",
		ProviderAccessTokenExpiry: expiry,
		ExpiresAt:                 time.Now().Add(24 * time.Hour),
	}

	view := newSessionView(session, "", true)

	// The owner's provider credentials ride on every oauth2 session view.
	assert.Equal(t, "access-token", view.ProviderAccessToken)
	assert.Equal(t, "refresh-token", view.ProviderRefreshToken)
	require.NotNil(t, view.ProviderAccessTokenExpiry)
	assert.True(t, expiry.Equal(*view.ProviderAccessTokenExpiry))
}

func TestNewSessionView_NonOAuth2OmitsProviderTokens(t *testing.T) {
	session := &entity.Session{
		ID:        uuid.New(),
		AccountID: uuid.New(),
		Provider:  entity.SessionProviderEmail,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}

	view := newSessionView(session, "", false)

	assert.Empty(t, view.ProviderAccessToken)
	assert.Empty(t, view.ProviderRefreshToken)
	assert.Nil(t, view.ProviderAccessTokenExpiry)
}

func TestNewSessionView_SecretOnlyOnCreation(t *testing.T) {
	session := &entity.Session{
		ID:        uuid.New(),
		AccountID: uuid.New(),
		Provider:  entity.SessionProviderEmail,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}

	created := newSessionView(session, "opaque-secret", true)
	assert.Equal(t, "opaque-secret", created.Secret)

	read := newSessionView(session, "", true)
	assert.Empty(t, read.Secret)
}
