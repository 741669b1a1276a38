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
	ErrBootstrapAlready      = errors.New("system already bootstrapped")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
)

// BootstrapService creates the first admin account on an empty database.
// Every later account enters through an invitation, so without this there
// would be nobody able to issue one.
type BootstrapService struct {
	Store store.Store
	Token string // Pre-configured bootstrap token
}

func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	empty, err := s.Store.Accounts().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

func (s *BootstrapService) Bootstrap(
	ctx context.Context,
	token string,
	email string,
	fullName string,
	password string,
) (string, error) {
	l := slogx.FromContext(ctx)

	// 1. Check if already bootstrapped
	if bootstrapped, _ := s.IsBootstrapped(ctx); bootstrapped {
		l.Warn("attempted bootstrap on already-bootstrapped system")
		return "", ErrBootstrapAlready
	}

	// 2. Validate provided token
	if s.Token == "" || token != s.Token {
		l.Warn("unauthorized bootstrap attempt")
		return "", ErrBootstrapUnauthorized
	}

	if email == "" || fullName == "" || len(password) < MinPasswordLength {
		return "", ErrInvalidRegistration
	}

	// 3. Hash password
	passHash, err := cryptox.HashPassword(password)
	if err != nil {
		l.Error("failed to hash admin password", slog.Any("error", err))
		return "", err
	}

	// 4. Create the admin account. The IsEmpty check above is advisory; the
	// unique email constraint makes a racing double-bootstrap lose cleanly.
	now := time.Now().UTC()
	adminID := idx.New().String()
	err = s.Store.Accounts().CreateAccount(ctx, domain.Account{
		ID:           adminID,
		Email:        email,
		FullName:     fullName,
		PasswordHash: passHash,
		Role:         domain.RoleAdmin,
		Status:       domain.AccountApproved,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return "", ErrBootstrapAlready
		}
		l.Error("failed to create admin account", slog.Any("error", err))
		return "", err
	}

	l.Info("successfully bootstrapped system", slog.String("admin_account_id", adminID))
	return adminID, nil
}
