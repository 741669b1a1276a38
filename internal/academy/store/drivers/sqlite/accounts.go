package sqlite

import (
	"context"

	"github.com/upperhound/academy/internal/academy/domain"
)

type accountsRepo struct {
	db dbtx
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (id, email, full_name, password_hash, role, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Email, a.FullName, a.PasswordHash, string(a.Role), string(a.Status),
		a.CreatedAt, a.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	return r.getAccount(ctx, `WHERE id = ?`, id)
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	return r.getAccount(ctx, `WHERE email = ?`, email)
}

func (r *accountsRepo) getAccount(ctx context.Context, where string, arg any) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, full_name, password_hash, role, status, created_at, updated_at
		FROM accounts `+where,
		arg,
	)

	var (
		a      domain.Account
		role   string
		status string
	)
	err := row.Scan(&a.ID, &a.Email, &a.FullName, &a.PasswordHash, &role, &status,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	a.Role = domain.Role(role)
	a.Status = domain.AccountStatus(status)
	return a, nil
}

func (r *accountsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
