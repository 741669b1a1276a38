package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/upperhound/academy/internal/academy/domain"
	"github.com/upperhound/academy/pkg/jwtx"
	"github.com/upperhound/academy/pkg/slogx"
)

type TokenService struct {
	Signer    *jwtx.Signer
	Issuer    string
	AccessTTL time.Duration // falls back to jwtx.DefaultSessionTTL when zero
}

// IssueSession mints a signed session token for an authenticated account.
// Returns the compact JWT and its lifetime in seconds.
func (s *TokenService) IssueSession(ctx context.Context, account domain.Account) (string, int64, error) {
	log := slogx.FromContext(ctx)

	ttl := s.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	claims := jwtx.NewSessionClaims(
		account.ID,
		account.Role.String(),
		account.FullName,
		s.Issuer,
		ttl,
		time.Now().UTC(),
	)

	token, err := s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return "", 0, err
	}

	return token, int64(ttl.Seconds()), nil
}
