package domain

import "time"

// Invitation is a one-time credential granting the right to create an
// account with a specified role. The token is the sole secret; it is stored
// with a uniqueness constraint and is only ever shown to the issuer at
// creation time.
type Invitation struct {
	ID        string
	Email     string
	Role      Role
	Token     string
	InvitedBy string // account id of the issuer
	ExpiresAt time.Time
	UsedAt    *time.Time // nil until accepted; never reverts
	CreatedAt time.Time
}

// Used reports whether the invitation has been consumed.
func (i Invitation) Used() bool { return i.UsedAt != nil }

// Expired reports whether the invitation's expiry horizon has passed at now.
func (i Invitation) Expired(now time.Time) bool { return now.After(i.ExpiresAt) }

// InvitationSummary is the safe projection returned by verification. It must
// not carry the invitation id, the token, or the usage marker.
type InvitationSummary struct {
	Email     string
	Role      Role
	InvitedBy string // human-readable issuer identity, not an id
	ExpiresAt time.Time
}
