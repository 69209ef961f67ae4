package repository

import (
	"context"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrBindingNotFound is returned when a provider binding is not found.
var ErrBindingNotFound = errors.New("provider binding not found")

// BindingRepository defines the interface for OAuth2 provider-binding
// persistence. The store enforces both unique (provider, provider_user_id) and
// unique (account, provider); the single-identity-per-provider constraint lives
// in the schema, not in application code.
type BindingRepository interface {
	// Create persists a new provider binding.
	Create(ctx context.Context, binding *entity.ProviderBinding) error

	// FindByProviderUser retrieves a binding by provider name and provider-side user ID.
	FindByProviderUser(ctx context.Context, provider, providerUserID string) (*entity.ProviderBinding, error)

	// FindByAccountAndProvider retrieves the binding of an account for one provider.
	FindByAccountAndProvider(ctx context.Context, accountID uuid.UUID, provider string) (*entity.ProviderBinding, error)

	// ListByAccountID returns all bindings of an account.
	ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.ProviderBinding, error)

	// Update replaces the stored provider tokens of an existing binding.
	Update(ctx context.Context, binding *entity.ProviderBinding) error

	// Delete removes a binding by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
