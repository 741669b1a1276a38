package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/upperhound/academy/internal/academy/domain"
)

type invitationsRepo struct {
	db dbtx
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invitations (id, email, role, token, invited_by, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Email, string(inv.Role), inv.Token, inv.InvitedBy, inv.ExpiresAt, inv.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *invitationsRepo) GetInvitationByToken(ctx context.Context, token string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, role, token, invited_by, expires_at, used_at, created_at
		FROM invitations
		WHERE token = ?`,
		token,
	)
	return scanInvitation(row)
}

// MarkInvitationUsed claims the invitation in a single statement. The WHERE
// clause carries the whole validity check so two concurrent accepts can never
// both succeed: exactly one UPDATE matches the unused row.
func (r *invitationsRepo) MarkInvitationUsed(ctx context.Context, token string, now time.Time) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE invitations
		SET used_at = ?
		WHERE token = ? AND used_at IS NULL AND expires_at > ?
		RETURNING id, email, role, token, invited_by, expires_at, used_at, created_at`,
		now, token, now,
	)
	return scanInvitation(row)
}

func (r *invitationsRepo) ListRecentInvitations(ctx context.Context, limit int) ([]domain.Invitation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, email, role, token, invited_by, expires_at, used_at, created_at
		FROM invitations
		ORDER BY created_at DESC
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *invitationsRepo) DeleteExpiredInvitations(ctx context.Context, now time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM invitations
		WHERE used_at IS NULL AND expires_at <= ?`,
		now,
	)
	return err
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvitation(row rowScanner) (domain.Invitation, error) {
	var (
		inv    domain.Invitation
		role   string
		usedAt sql.NullTime
	)
	err := row.Scan(&inv.ID, &inv.Email, &role, &inv.Token, &inv.InvitedBy,
		&inv.ExpiresAt, &usedAt, &inv.CreatedAt)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	inv.Role = domain.Role(role)
	inv.UsedAt = mapNullTimePtr(usedAt)
	return inv, nil
}
