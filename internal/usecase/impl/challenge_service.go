package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"passport/config"
	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"
	"passport/internal/util"
)

const (
	defaultChallengeCodeLength = 6
	defaultChallengeDuration   = 15 * time.Minute
	dispatchTimeout            = 5 * time.Second
)

// challengeService implements the ChallengeUsecase interface.
type challengeService struct {
	txManager       repository.TransactionManager
	dispatcher      service.MessageDispatcher
	secretGenerator service.SecretGenerator
	codeLength      int
	challengeTTL    time.Duration
	sessionDuration time.Duration
	logger          *slog.Logger
}

// ChallengeServiceParams holds dependencies for ChallengeService, injected by Fx.
type ChallengeServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	Dispatcher      service.MessageDispatcher
	SecretGenerator service.SecretGenerator
	Config          *config.Config
	Logger          *slog.Logger
}

// NewChallengeService is the constructor for challengeService. It receives all dependencies as interfaces.
func NewChallengeService(params ChallengeServiceParams) usecase.ChallengeUsecase {
	codeLength := defaultChallengeCodeLength
	challengeTTL := defaultChallengeDuration
	if params.Config != nil && params.Config.Challenge != nil {
		if params.Config.Challenge.CodeLength > 0 {
			codeLength = params.Config.Challenge.CodeLength
		}
		if params.Config.Challenge.Duration > 0 {
			challengeTTL = params.Config.Challenge.Duration
		}
	}

	sessionDuration := defaultSessionDuration
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.SessionDuration > 0 {
		sessionDuration = params.Config.Auth.SessionDuration
	}

	return &challengeService{
		txManager:       params.TxManager,
		dispatcher:      params.Dispatcher,
		secretGenerator: params.SecretGenerator,
		codeLength:      codeLength,
		challengeTTL:    challengeTTL,
		sessionDuration: sessionDuration,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *challengeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePhoneSession issues a login code to the given phone number, creating
// the account on first contact. The response never carries the code; it only
// travels through the delivery channel.
func (srv *challengeService) CreatePhoneSession(ctx context.Context, input *usecase.CreatePhoneSessionInput) (*usecase.ChallengeOutput, error) {
	if input.Phone == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingRequiredField, "phone is required")
	}

	srv.log(ctx).Info("Creating phone session challenge")

	secret, err := srv.secretGenerator.NumericCode(srv.codeLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate challenge code")
	}

	var output *usecase.ChallengeOutput

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		// 1. Resolve or create the account behind the phone number.
		account, err := accountRepo.FindByPhone(ctx, input.Phone)
		if err != nil {
			if !errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(err, "failed to find account by phone")
			}

			account = &entity.Account{
				ID:     input.ID,
				Phone:  input.Phone,
				Status: entity.AccountStatusEnabled,
			}
			if err := accountRepo.Create(ctx, account); err != nil {
				if errors.Is(err, repository.ErrDuplicatePhone) {
					return errors.Wrap(domainerrors.ErrPhoneAlreadyExists, "phone already registered")
				}

				return errors.Wrap(err, "failed to create account")
			}
			if err := appendAuditEntry(ctx, repoFactory, account.ID, entity.EventAccountCreate, input.Client); err != nil {
				return err
			}
		}

		if account.IsBlocked() {
			return errors.Wrap(domainerrors.ErrAccountBlocked, "account is blocked")
		}

		// 2. Store only the hash of the code.
		challenge, err := srv.storeChallenge(ctx, repoFactory, account.ID, entity.ChallengeChannelPhone, secret, input.Client)
		if err != nil {
			return err
		}

		output = &usecase.ChallengeOutput{
			ChallengeID: challenge.ID,
			AccountID:   account.ID,
			ExpiresAt:   challenge.ExpiresAt,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create phone session challenge", slog.Any("error", err))

		return nil, err
	}

	// 3. Deliver the code after commit; the provider call must not hold a
	// transaction open. A failed delivery withdraws the challenge.
	if err := srv.deliver(ctx, output.ChallengeID, &service.Message{
		Channel: entity.ChallengeChannelPhone,
		To:      input.Phone,
		Body:    secret,
	}); err != nil {
		srv.log(ctx).Error("Failed to deliver phone session challenge", slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

// ConfirmPhoneSession validates the code and opens a session.
func (srv *challengeService) ConfirmPhoneSession(ctx context.Context, input *usecase.ConfirmPhoneSessionInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Info("Confirming phone session", slog.Any("accountID", input.AccountID))

	var output *usecase.SessionOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		// 1. The account must exist; an unknown ID is not an auth failure.
		account, err := accountRepo.FindByID(ctx, input.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
			}

			return errors.Wrap(err, "failed to find account")
		}

		// 2. Validate and consume the challenge.
		if err := srv.consumeChallenge(ctx, repoFactory, account.ID, entity.ChallengeChannelPhone, input.Secret); err != nil {
			return err
		}

		// 3. Proof of code receipt is proof of phone ownership.
		if !account.PhoneVerification {
			account.PhoneVerification = true
			if err := accountRepo.Update(ctx, account); err != nil {
				return errors.Wrap(err, "failed to mark phone verified")
			}
		}

		if err := appendAuditEntry(ctx, repoFactory, account.ID, entity.EventChallengeConfirm, input.Client); err != nil {
			return err
		}

		// 4. Open the session.
		out, err := openSession(ctx, repoFactory, srv.secretGenerator, srv.sessionDuration, account.ID, entity.SessionProviderPhone, input.Client)
		if err != nil {
			return err
		}
		output = out

		return appendAuditEntry(ctx, repoFactory, account.ID, entity.EventSessionCreate, input.Client)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to confirm phone session", slog.Any("accountID", input.AccountID), slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

// CreatePhoneVerification issues a confirmation code to the account's own phone number.
func (srv *challengeService) CreatePhoneVerification(ctx context.Context, accountID uuid.UUID, client entity.ClientInfo) (*usecase.ChallengeOutput, error) {
	srv.log(ctx).Info("Creating phone verification", slog.Any("accountID", accountID))

	secret, err := srv.secretGenerator.NumericCode(srv.codeLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate challenge code")
	}

	var output *usecase.ChallengeOutput
	var phone string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		account, err := repoFactory.AccountRepo().FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
			}

			return errors.Wrap(err, "failed to find account")
		}
		if account.Phone == "" {
			return errors.Wrap(domainerrors.ErrMissingRequiredField, "account has no phone number")
		}
		phone = account.Phone

		challenge, err := srv.storeChallenge(ctx, repoFactory, account.ID, entity.ChallengeChannelPhone, secret, client)
		if err != nil {
			return err
		}
		output = &usecase.ChallengeOutput{
			ChallengeID: challenge.ID,
			AccountID:   account.ID,
			ExpiresAt:   challenge.ExpiresAt,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create phone verification", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, err
	}

	if err := srv.deliver(ctx, output.ChallengeID, &service.Message{
		Channel: entity.ChallengeChannelPhone,
		To:      phone,
		Body:    secret,
	}); err != nil {
		srv.log(ctx).Error("Failed to deliver phone verification", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

// ConfirmPhoneVerification validates the code and marks the phone verified.
func (srv *challengeService) ConfirmPhoneVerification(ctx context.Context, input *usecase.ConfirmVerificationInput) error {
	return srv.confirmVerification(ctx, input, entity.ChallengeChannelPhone, func(account *entity.Account) {
		account.PhoneVerification = true
	})
}

// CreateEmailVerification issues a confirmation secret to the account's own email address.
func (srv *challengeService) CreateEmailVerification(ctx context.Context, input *usecase.CreateEmailVerificationInput) (*usecase.ChallengeOutput, error) {
	srv.log(ctx).Info("Creating email verification", slog.Any("accountID", input.AccountID))

	secret, err := srv.secretGenerator.NumericCode(srv.codeLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate challenge code")
	}

	var output *usecase.ChallengeOutput
	var email string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		account, err := repoFactory.AccountRepo().FindByID(ctx, input.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
			}

			return errors.Wrap(err, "failed to find account")
		}
		if account.Email == "" {
			return errors.Wrap(domainerrors.ErrMissingRequiredField, "account has no email address")
		}
		email = account.Email

		challenge, err := srv.storeChallenge(ctx, repoFactory, account.ID, entity.ChallengeChannelEmail, secret, input.Client)
		if err != nil {
			return err
		}
		output = &usecase.ChallengeOutput{
			ChallengeID: challenge.ID,
			AccountID:   account.ID,
			ExpiresAt:   challenge.ExpiresAt,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create email verification", slog.Any("accountID", input.AccountID), slog.Any("error", err))

		return nil, err
	}

	// The link lands on the application's page, which forwards userId and
	// secret back through the confirmation endpoint.
	link := fmt.Sprintf("%s?userId=%s&secret=%s", input.URL, output.AccountID, secret)

	if err := srv.deliver(ctx, output.ChallengeID, &service.Message{
		Channel: entity.ChallengeChannelEmail,
		To:      email,
		Subject: "Account verification",
		Body:    link,
	}); err != nil {
		srv.log(ctx).Error("Failed to deliver email verification", slog.Any("accountID", input.AccountID), slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

// ConfirmEmailVerification validates the secret and marks the email verified.
func (srv *challengeService) ConfirmEmailVerification(ctx context.Context, input *usecase.ConfirmVerificationInput) error {
	return srv.confirmVerification(ctx, input, entity.ChallengeChannelEmail, func(account *entity.Account) {
		account.EmailVerification = true
	})
}

// confirmVerification is the shared confirm path for both channels.
func (srv *challengeService) confirmVerification(ctx context.Context, input *usecase.ConfirmVerificationInput, channel entity.ChallengeChannel, markVerified func(*entity.Account)) error {
	srv.log(ctx).Info("Confirming verification", slog.Any("accountID", input.AccountID), slog.String("channel", string(channel)))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(ctx, input.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
			}

			return errors.Wrap(err, "failed to find account")
		}

		if err := srv.consumeChallenge(ctx, repoFactory, account.ID, channel, input.Secret); err != nil {
			return err
		}

		markVerified(account)
		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to mark account verified")
		}

		return appendAuditEntry(ctx, repoFactory, account.ID, entity.EventChallengeConfirm, input.Client)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to confirm verification", slog.Any("accountID", input.AccountID), slog.Any("error", err))

		return err
	}

	return nil
}

// storeChallenge persists the hashed code and logs the issuance.
func (srv *challengeService) storeChallenge(ctx context.Context, repoFactory repository.RepositoryFactory, accountID uuid.UUID, channel entity.ChallengeChannel, secret string, client entity.ClientInfo) (*entity.Challenge, error) {
	challenge := &entity.Challenge{
		AccountID:  accountID,
		Channel:    channel,
		SecretHash: util.SHA256Hex(secret),
		ExpiresAt:  time.Now().Add(srv.challengeTTL),
	}
	if err := repoFactory.ChallengeRepo().Create(ctx, challenge); err != nil {
		return nil, errors.Wrap(err, "failed to create challenge")
	}

	if err := appendAuditEntry(ctx, repoFactory, accountID, entity.EventChallengeCreate, client); err != nil {
		return nil, err
	}

	return challenge, nil
}

// consumeChallenge validates the presented secret against the latest unconsumed
// challenge and burns it. The conditional consume guarantees a code never
// validates twice, even under concurrent confirmation attempts.
func (srv *challengeService) consumeChallenge(ctx context.Context, repoFactory repository.RepositoryFactory, accountID uuid.UUID, channel entity.ChallengeChannel, secret string) error {
	challengeRepo := repoFactory.ChallengeRepo()

	challenge, err := challengeRepo.FindLatestByAccount(ctx, accountID, channel)
	if err != nil {
		if errors.Is(err, repository.ErrChallengeNotFound) {
			return errors.Wrap(domainerrors.ErrChallengeInvalid, "no pending challenge")
		}

		return errors.Wrap(err, "failed to find challenge")
	}

	if challenge.IsExpired(time.Now()) {
		return errors.Wrap(domainerrors.ErrChallengeInvalid, "challenge expired")
	}
	if challenge.SecretHash != util.SHA256Hex(secret) {
		return errors.Wrap(domainerrors.ErrChallengeInvalid, "wrong secret")
	}

	if err := challengeRepo.Consume(ctx, challenge.ID); err != nil {
		if errors.Is(err, repository.ErrChallengeConsumed) {
			return errors.Wrap(domainerrors.ErrChallengeInvalid, "challenge already used")
		}

		return errors.Wrap(err, "failed to consume challenge")
	}

	return nil
}

// deliver sends the code for an already-committed challenge. On delivery
// failure the challenge is withdrawn again, so no confirmable challenge
// outlives a failed send.
func (srv *challengeService) deliver(ctx context.Context, challengeID uuid.UUID, msg *service.Message) error {
	err := srv.dispatch(ctx, msg)
	if err == nil {
		return nil
	}

	cleanupErr := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ChallengeRepo().Delete(ctx, challengeID)
	})
	if cleanupErr != nil {
		// The challenge stays behind but is unusable: its code was never
		// delivered and it expires on its own.
		srv.log(ctx).Error("Failed to withdraw undelivered challenge",
			slog.Any("challengeID", challengeID), slog.Any("error", cleanupErr))
	}

	return err
}

// dispatch sends the message with a bounded timeout, retrying once on a
// transient failure before giving up with a service-unavailable error.
func (srv *challengeService) dispatch(ctx context.Context, msg *service.Message) error {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		dispatchCtx, cancel := context.WithTimeout(ctx, dispatchTimeout)
		lastErr = srv.dispatcher.Dispatch(dispatchCtx, msg)
		cancel()
		if lastErr == nil {
			return nil
		}
	}

	return errors.Wrap(domainerrors.ErrDeliveryFailed, lastErr.Error())
}
