package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/upperhound/academy/internal/academy/domain"
	"github.com/upperhound/academy/internal/academy/store"
	"github.com/upperhound/academy/pkg/cryptox"
	"github.com/upperhound/academy/pkg/idx"
	"github.com/upperhound/academy/pkg/slogx"
)

var (
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInviterNotFound    = errors.New("inviter account not found")
	ErrInviterSuspended   = errors.New("inviter account is not in good standing")
	ErrRoleNotAllowed     = errors.New("inviter may not grant this role")
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrInvitationUsed     = errors.New("invitation has already been used")
	ErrInvitationExpired  = errors.New("invitation has expired")
	ErrAccountExists      = errors.New("an account with this email already exists")
)

// DefaultInviteTTL is the expiry horizon applied to new invitations.
const DefaultInviteTTL = 7 * 24 * time.Hour

// placeholderInviter is shown when the issuer account no longer resolves to
// a displayable identity.
const placeholderInviter = "an academy administrator"

type InvitationService struct {
	Store store.Store
	TTL   time.Duration // falls back to DefaultInviteTTL when zero
}

func (s *InvitationService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return DefaultInviteTTL
}

// Issue creates a new invitation on behalf of inviterID. The inviter must be
// an existing approved account whose role may grant the requested role.
// The returned invitation carries the raw token; this is the only time it is
// ever surfaced.
func (s *InvitationService) Issue(
	ctx context.Context,
	email string,
	roleName string,
	inviterID string,
) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate email shape. The address must parse and must be bare
	// (no display name), since it becomes the account email verbatim.
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		log.Warn("invitation issue attempted with malformed email")
		return domain.Invitation{}, ErrInvalidEmail
	}

	// 2. Validate role against the closed set.
	role, ok := domain.ParseRole(roleName)
	if !ok {
		log.Warn("invitation issue attempted with invalid role",
			slog.String("role", roleName),
		)
		return domain.Invitation{}, ErrInvalidRole
	}

	// 3. Resolve the inviter and check standing plus hierarchy.
	inviter, err := s.Store.Accounts().GetAccountByID(ctx, inviterID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("invitation issue attempted by unknown account",
				slog.String("inviter_id", inviterID),
			)
			return domain.Invitation{}, ErrInviterNotFound
		}
		log.Error("failed to fetch inviter account", slog.Any("error", err))
		return domain.Invitation{}, err
	}
	if inviter.Status != domain.AccountApproved {
		log.Warn("invitation issue attempted by suspended account",
			slog.String("inviter_id", inviterID),
		)
		return domain.Invitation{}, ErrInviterSuspended
	}
	if !inviter.Role.CanGrant(role) {
		log.Warn("invitation issue attempted above inviter's station",
			slog.String("inviter_id", inviterID),
			slog.String("inviter_role", inviter.Role.String()),
			slog.String("requested_role", role.String()),
		)
		return domain.Invitation{}, ErrRoleNotAllowed
	}

	// 4. Generate the random token.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	now := time.Now().UTC()
	inv := domain.Invitation{
		ID:        idx.New().String(),
		Email:     email,
		Role:      role,
		Token:     token,
		InvitedBy: inviter.ID,
		ExpiresAt: now.Add(s.ttl()),
		CreatedAt: now,
	}

	// 5. Store the invitation. The token column's uniqueness constraint is
	// the backstop against the astronomically unlikely collision.
	if err := s.Store.Invitations().CreateInvitation(ctx, inv); err != nil {
		log.Error("failed to create invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return domain.Invitation{}, err
	}

	log.Info("invitation issued",
		slog.String("invitation_id", inv.ID),
		slog.String("role", role.String()),
		slog.String("invited_by", inviter.ID),
		slog.Time("expires_at", inv.ExpiresAt),
	)

	return inv, nil
}

// Verify checks a token without consuming it and returns the safe summary.
// The failure checks run in a fixed order so callers always see the most
// specific reason: unknown token, then already used, then expired, then an
// email that already has an account.
func (s *InvitationService) Verify(ctx context.Context, token string) (domain.InvitationSummary, error) {
	log := slogx.FromContext(ctx)

	inv, err := s.Store.Invitations().GetInvitationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.InvitationSummary{}, ErrInvitationNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return domain.InvitationSummary{}, err
	}

	if inv.Used() {
		return domain.InvitationSummary{}, ErrInvitationUsed
	}
	if inv.Expired(time.Now().UTC()) {
		return domain.InvitationSummary{}, ErrInvitationExpired
	}

	// An invitation for an email that already registered is unusable even
	// though the row itself is still honorable.
	if _, err := s.Store.Accounts().GetAccountByEmail(ctx, inv.Email); err == nil {
		return domain.InvitationSummary{}, ErrAccountExists
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check for existing account", slog.Any("error", err))
		return domain.InvitationSummary{}, err
	}

	return domain.InvitationSummary{
		Email:     inv.Email,
		Role:      inv.Role,
		InvitedBy: s.inviterDisplayName(ctx, inv.InvitedBy),
		ExpiresAt: inv.ExpiresAt,
	}, nil
}

// inviterDisplayName resolves an inviter id to something presentable,
// falling back from full name to email to a generic placeholder.
func (s *InvitationService) inviterDisplayName(ctx context.Context, inviterID string) string {
	inviter, err := s.Store.Accounts().GetAccountByID(ctx, inviterID)
	if err != nil {
		return placeholderInviter
	}
	if inviter.FullName != "" {
		return inviter.FullName
	}
	if inviter.Email != "" {
		return inviter.Email
	}
	return placeholderInviter
}

// Accept consumes an invitation. The entire validity predicate is evaluated
// inside the store's single conditional update, so under concurrent accepts
// exactly one caller wins. A token that is unknown, already used, or expired
// is reported uniformly as not found; acceptance deliberately does not reveal
// which.
func (s *InvitationService) Accept(ctx context.Context, token string) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	inv, err := s.Store.Invitations().MarkInvitationUsed(ctx, token, time.Now().UTC())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("invitation acceptance attempted with unusable token")
			return domain.Invitation{}, ErrInvitationNotFound
		}
		log.Error("failed to accept invitation", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	log.Info("invitation accepted",
		slog.String("invitation_id", inv.ID),
		slog.String("role", inv.Role.String()),
	)

	return inv, nil
}

// ListRecent returns the latest invitations for the admin dashboard feed.
func (s *InvitationService) ListRecent(ctx context.Context, limit int) ([]domain.Invitation, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.Store.Invitations().ListRecentInvitations(ctx, limit)
}
