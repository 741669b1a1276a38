package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/upperhound/academy/internal/academy/domain"
	"github.com/upperhound/academy/internal/academy/store"
	"github.com/upperhound/academy/pkg/cryptox"
	"github.com/upperhound/academy/pkg/idx"
	"github.com/upperhound/academy/pkg/slogx"
)

var (
	ErrInvalidRegistration = errors.New("invalid registration request")
	ErrEmailTaken          = errors.New("an account with this email already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
)

// MinPasswordLength keeps the check deliberately simple; entropy policy
// belongs to the frontend.
const MinPasswordLength = 12

type AccountService struct {
	Store store.Store
}

// Register consumes an invitation and creates the account it grants. The
// conditional token claim and the account insert happen in one transaction,
// so a token is never burned without its account existing, and the same
// token can never produce two accounts.
func (s *AccountService) Register(
	ctx context.Context,
	token string,
	fullName string,
	password string,
) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	if token == "" || fullName == "" {
		log.Warn("registration missing required fields")
		return domain.Account{}, ErrInvalidRegistration
	}
	if len(password) < MinPasswordLength {
		log.Warn("registration attempted with short password")
		return domain.Account{}, ErrInvalidRegistration
	}

	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.Account{}, err
	}

	now := time.Now().UTC()
	var account domain.Account

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		inv, err := tx.Invitations().MarkInvitationUsed(ctx, token, now)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvitationNotFound
			}
			return err
		}

		account = domain.Account{
			ID:           idx.New().String(),
			Email:        inv.Email,
			FullName:     fullName,
			PasswordHash: passwordHash,
			Role:         inv.Role,
			Status:       domain.AccountApproved,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		if err := tx.Accounts().CreateAccount(ctx, account); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				// Rolls back the token claim as well, leaving the
				// invitation honorable for a support follow-up.
				return ErrEmailTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvitationNotFound) || errors.Is(err, ErrEmailTaken) {
			log.Warn("registration rejected", slog.Any("reason", err))
			return domain.Account{}, err
		}
		log.Error("failed to register account", slog.Any("error", err))
		return domain.Account{}, err
	}

	log.Info("account registered",
		slog.String("account_id", account.ID),
		slog.String("role", account.Role.String()),
	)

	return account, nil
}

// Authenticate verifies an email/password pair. Unknown email, wrong
// password, and a suspended account all report the same credential error so
// login probes learn nothing.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	account, err := s.Store.Accounts().GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch account", slog.Any("error", err))
		return domain.Account{}, err
	}

	if err := cryptox.VerifyPassword(password, account.PasswordHash); err != nil {
		log.Info("login failed", slog.String("account_id", account.ID))
		return domain.Account{}, ErrInvalidCredentials
	}

	if account.Status != domain.AccountApproved {
		log.Warn("login attempted by suspended account", slog.String("account_id", account.ID))
		return domain.Account{}, ErrInvalidCredentials
	}

	return account, nil
}
