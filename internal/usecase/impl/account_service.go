// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
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
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAccount registers a new email/password account.
func (srv *accountService) CreateAccount(ctx context.Context, input *usecase.CreateAccountInput) (*entity.Account, error) {
	srv.log(ctx).Info("Creating account", slog.String("email", input.Email))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	account := &entity.Account{
		ID:           input.ID,
		Email:        strings.ToLower(input.Email),
		Name:         input.Name,
		PasswordHash: passwordHash,
		Status:       entity.AccountStatusEnabled,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. Persist the account; the unique index arbitrates duplicate emails.
		if err := repoFactory.AccountRepo().Create(ctx, account); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return errors.Wrap(domainerrors.ErrAccountAlreadyExists, "email already registered")
			}

			return errors.Wrap(err, "failed to create account")
		}

		// 2. Record the creation in the audit log, same transaction.
		return appendAuditEntry(ctx, repoFactory, account.ID, entity.EventAccountCreate, input.Client)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create account", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Account created", slog.Any("accountID", account.ID))

	return account, nil
}

// GetAccount returns the account and maintains its last-accessed timestamp.
func (srv *accountService) GetAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		found, err := accountRepo.FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
			}

			return errors.Wrap(err, "failed to find account")
		}

		now := time.Now()
		if err := accountRepo.TouchAccessedAt(ctx, accountID, now); err != nil {
			return errors.Wrap(err, "failed to touch accessed_at")
		}
		found.AccessedAt = now
		account = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// UpdateEmail changes the login email. An anonymous account is upgraded in
// place here: same ID, sessions untouched, password installed as its first
// credential.
func (srv *accountService) UpdateEmail(ctx context.Context, input *usecase.UpdateEmailInput) (*entity.Account, error) {
	srv.log(ctx).Info("Updating account email", slog.Any("accountID", input.AccountID))

	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		// 1. Load the account.
		found, err := accountRepo.FindByID(ctx, input.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
			}

			return errors.Wrap(err, "failed to find account")
		}

		// 2. Verify the current credential, or install one on an anonymous account.
		if found.PasswordHash != "" {
			if !srv.hasher.Check(input.Password, found.PasswordHash) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "wrong password")
			}
		} else {
			passwordHash, err := srv.hasher.Hash(input.Password)
			if err != nil {
				return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
			}
			found.PasswordHash = passwordHash
		}

		// 3. Apply the new email; a new address is unverified until challenged.
		found.Email = strings.ToLower(input.Email)
		found.EmailVerification = false

		// 4. Save; the unique index turns a taken email into a conflict with no mutation.
		if err := accountRepo.Update(ctx, found); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return errors.Wrap(domainerrors.ErrAccountAlreadyExists, "email already registered")
			}

			return errors.Wrap(err, "failed to update account")
		}
		account = found

		return appendAuditEntry(ctx, repoFactory, found.ID, entity.EventAccountUpdateEmail, input.Client)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update email", slog.Any("accountID", input.AccountID), slog.Any("error", err))

		return nil, err
	}

	return account, nil
}

// UpdatePassword changes the password, verifying the old one when present.
func (srv *accountService) UpdatePassword(ctx context.Context, input *usecase.UpdatePasswordInput) (*entity.Account, error) {
	srv.log(ctx).Info("Updating account password", slog.Any("accountID", input.AccountID))

	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		found, err := accountRepo.FindByID(ctx, input.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
			}

			return errors.Wrap(err, "failed to find account")
		}

		// Accounts created through OAuth2 or phone have no password yet; for
		// them the old-password check is skipped.
		if found.PasswordHash != "" && !srv.hasher.Check(input.OldPassword, found.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "wrong password")
		}

		passwordHash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		found.PasswordHash = passwordHash

		if err := accountRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update account")
		}
		account = found

		return appendAuditEntry(ctx, repoFactory, found.ID, entity.EventAccountUpdatePassword, input.Client)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update password", slog.Any("accountID", input.AccountID), slog.Any("error", err))

		return nil, err
	}

	return account, nil
}

// UpdatePhone changes the phone number; a taken number yields a conflict.
func (srv *accountService) UpdatePhone(ctx context.Context, input *usecase.UpdatePhoneInput) (*entity.Account, error) {
	srv.log(ctx).Info("Updating account phone", slog.Any("accountID", input.AccountID))

	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		found, err := accountRepo.FindByID(ctx, input.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
			}

			return errors.Wrap(err, "failed to find account")
		}

		if found.PasswordHash != "" && !srv.hasher.Check(input.Password, found.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "wrong password")
		}

		found.Phone = input.Phone
		found.PhoneVerification = false

		if err := accountRepo.Update(ctx, found); err != nil {
			if errors.Is(err, repository.ErrDuplicatePhone) {
				return errors.Wrap(domainerrors.ErrPhoneAlreadyExists, "phone already registered")
			}

			return errors.Wrap(err, "failed to update account")
		}
		account = found

		return appendAuditEntry(ctx, repoFactory, found.ID, entity.EventAccountUpdatePhone, input.Client)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update phone", slog.Any("accountID", input.AccountID), slog.Any("error", err))

		return nil, err
	}

	return account, nil
}

// UpdateName changes the display name.
func (srv *accountService) UpdateName(ctx context.Context, input *usecase.UpdateNameInput) (*entity.Account, error) {
	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		found, err := accountRepo.FindByID(ctx, input.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
			}

			return errors.Wrap(err, "failed to find account")
		}

		found.Name = input.Name

		if err := accountRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update account")
		}
		account = found

		return appendAuditEntry(ctx, repoFactory, found.ID, entity.EventAccountUpdateName, input.Client)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update name", slog.Any("accountID", input.AccountID), slog.Any("error", err))

		return nil, err
	}

	return account, nil
}

// BlockSelf blocks the calling account and deletes all of its sessions, so the
// lockout takes effect immediately rather than at next authentication.
func (srv *accountService) BlockSelf(ctx context.Context, input *usecase.SetStatusInput) (*entity.Account, error) {
	srv.log(ctx).Info("Account self-block", slog.Any("accountID", input.AccountID))

	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := srv.applyStatus(ctx, repoFactory, input.AccountID, entity.AccountStatusBlocked)
		if err != nil {
			return err
		}

		// Revoke every session of the account in the same transaction.
		if err := repoFactory.SessionRepo().DeleteByAccountID(ctx, input.AccountID); err != nil {
			return errors.Wrap(err, "failed to delete account sessions")
		}
		account = found

		return appendAuditEntry(ctx, repoFactory, found.ID, entity.EventAccountUpdateStatus, input.Client)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to block account", slog.Any("accountID", input.AccountID), slog.Any("error", err))

		return nil, err
	}

	return account, nil
}

// SetStatus sets an account's status on behalf of an admin caller. Unblocking
// does not resurrect sessions deleted by the block.
func (srv *accountService) SetStatus(ctx context.Context, input *usecase.SetStatusInput) (*entity.Account, error) {
	srv.log(ctx).Info("Admin status change", slog.Any("accountID", input.AccountID), slog.String("status", string(input.Status)))

	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := srv.applyStatus(ctx, repoFactory, input.AccountID, input.Status)
		if err != nil {
			return err
		}

		if input.Status == entity.AccountStatusBlocked {
			if err := repoFactory.SessionRepo().DeleteByAccountID(ctx, input.AccountID); err != nil {
				return errors.Wrap(err, "failed to delete account sessions")
			}
		}
		account = found

		return appendAuditEntry(ctx, repoFactory, found.ID, entity.EventAccountUpdateStatus, input.Client)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to set account status", slog.Any("accountID", input.AccountID), slog.Any("error", err))

		return nil, err
	}

	return account, nil
}

// applyStatus loads the account and persists the new status.
func (srv *accountService) applyStatus(ctx context.Context, repoFactory repository.RepositoryFactory, accountID uuid.UUID, status entity.AccountStatus) (*entity.Account, error) {
	accountRepo := repoFactory.AccountRepo()

	found, err := accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	found.Status = status
	if err := accountRepo.Update(ctx, found); err != nil {
		return nil, errors.Wrap(err, "failed to update account status")
	}

	return found, nil
}

// appendAuditEntry records a security event in the transaction of the change it
// describes, so the log and the change commit or roll back together.
func appendAuditEntry(ctx context.Context, repoFactory repository.RepositoryFactory, accountID uuid.UUID, event string, client entity.ClientInfo) error {
	entry := &entity.AuditLogEntry{
		AccountID: accountID,
		Event:     event,
		Client:    client,
	}
	if err := repoFactory.AuditLogRepo().Append(ctx, entry); err != nil {
		return errors.Wrap(err, "failed to append audit log entry")
	}

	return nil
}
