package domain

import "time"

// AccountStatus is the standing of an account. Only approved accounts may
// issue invitations.
type AccountStatus string

const (
	AccountApproved  AccountStatus = "approved"
	AccountSuspended AccountStatus = "suspended"
)

type Account struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string // argon2id encoded
	Role         Role
	Status       AccountStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
