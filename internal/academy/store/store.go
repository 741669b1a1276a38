package store

import (
	"context"
	"errors"
	"time"

	"github.com/upperhound/academy/internal/academy/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and keeps transaction scoping explicit so callers can't
// accidentally nest transactions.
type Store interface {
	Invitations() Invitations
	Accounts() Accounts

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic (e.g., accepting
	// an invitation and creating the account it grants).
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Invitations interface {
	// CreateInvitation writes a new invitation. The token column carries a
	// uniqueness constraint; a collision surfaces as ErrAlreadyExists.
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetInvitationByToken returns an invitation by its token regardless of
	// its used or expired state. Callers decide what that state means.
	GetInvitationByToken(ctx context.Context, token string) (domain.Invitation, error)

	// MarkInvitationUsed atomically claims an unused, unexpired invitation by
	// token, stamping used_at=now. It returns the claimed invitation, or
	// ErrNotFound if the token does not exist, was already used, or expired
	// before now. This is the single compare-and-set behind acceptance.
	MarkInvitationUsed(ctx context.Context, token string, now time.Time) (domain.Invitation, error)

	// ListRecentInvitations returns invitations newest first, capped at limit.
	ListRecentInvitations(ctx context.Context, limit int) ([]domain.Invitation, error)

	// DeleteExpiredInvitations removes expired invitations that were never
	// used. Used invitations are retained as an audit trail.
	DeleteExpiredInvitations(ctx context.Context, now time.Time) error
}

type Accounts interface {
	// CreateAccount inserts a new account (id is provided by app via ULID).
	// A duplicate email surfaces as ErrAlreadyExists.
	CreateAccount(ctx context.Context, a domain.Account) error

	// GetAccountByID returns an account by id.
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	// GetAccountByEmail is used during login and duplicate checks.
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)

	// IsEmpty returns true if there are no accounts (bootstrap gate).
	IsEmpty(ctx context.Context) (bool, error)
}
