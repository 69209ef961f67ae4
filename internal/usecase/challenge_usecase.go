package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"passport/internal/domain/entity"
)

// --- Input DTOs ---

// CreatePhoneSessionInput starts a phone login. ID is optional; when zero and
// the phone is unknown, a new account is created for it.
type CreatePhoneSessionInput struct {
	ID     uuid.UUID
	Phone  string
	Client entity.ClientInfo
}

// ConfirmPhoneSessionInput completes a phone login with the delivered secret.
type ConfirmPhoneSessionInput struct {
	AccountID uuid.UUID
	Secret    string
	Client    entity.ClientInfo
}

// CreateEmailVerificationInput starts an email confirmation for the current
// account. URL is the application page the secret link should point at.
type CreateEmailVerificationInput struct {
	AccountID uuid.UUID
	URL       string
	Client    entity.ClientInfo
}

// ConfirmVerificationInput completes an email or phone confirmation.
type ConfirmVerificationInput struct {
	AccountID uuid.UUID
	Secret    string
	Client    entity.ClientInfo
}

// --- Output DTOs ---

// ChallengeOutput describes an issued challenge. Secret is always empty: the
// code only travels through the delivery channel, never through the API.
type ChallengeOutput struct {
	ChallengeID uuid.UUID
	AccountID   uuid.UUID
	Secret      string
	ExpiresAt   time.Time
}

// ChallengeUsecase defines the interface for one-time-secret flows: phone
// login and email/phone ownership verification.
type ChallengeUsecase interface {
	// CreatePhoneSession issues a login code to the given phone number,
	// creating the account on first contact.
	CreatePhoneSession(ctx context.Context, input *CreatePhoneSessionInput) (*ChallengeOutput, error)

	// ConfirmPhoneSession validates the code and opens a session. The account's
	// phone is marked verified. A wrong, expired or re-used code always fails.
	ConfirmPhoneSession(ctx context.Context, input *ConfirmPhoneSessionInput) (*SessionOutput, error)

	// CreatePhoneVerification issues a confirmation code to the account's own
	// phone number.
	CreatePhoneVerification(ctx context.Context, accountID uuid.UUID, client entity.ClientInfo) (*ChallengeOutput, error)

	// ConfirmPhoneVerification validates the code and marks the phone verified.
	ConfirmPhoneVerification(ctx context.Context, input *ConfirmVerificationInput) error

	// CreateEmailVerification issues a confirmation secret to the account's own
	// email address.
	CreateEmailVerification(ctx context.Context, input *CreateEmailVerificationInput) (*ChallengeOutput, error)

	// ConfirmEmailVerification validates the secret and marks the email verified.
	ConfirmEmailVerification(ctx context.Context, input *ConfirmVerificationInput) error
}
