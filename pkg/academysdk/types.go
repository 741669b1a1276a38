package academysdk

import "time"

// ErrorResponse is the uniform failure body: one human readable message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// IssueInvitationRequest asks the service to mint an invitation.
type IssueInvitationRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// InvitationRecord is the full invitation as seen by staff. Token is only
// populated in the issuance response; listings omit it.
type InvitationRecord struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Token     string     `json:"token,omitempty"`
	InvitedBy string     `json:"invited_by"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type IssueInvitationResponse struct {
	Message    string           `json:"message"`
	Invitation InvitationRecord `json:"invitation"`
}

type ListInvitationsResponse struct {
	Invitations []InvitationRecord `json:"invitations"`
}

// VerifyInvitationRequest checks a token without consuming it.
type VerifyInvitationRequest struct {
	Token string `json:"token"`
}

// InvitationSummary is the safe projection returned by verification.
// InvitedBy carries a displayable identity, never an account id.
type InvitationSummary struct {
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	InvitedBy string    `json:"invited_by"`
	ExpiresAt time.Time `json:"expires_at"`
}

type VerifyInvitationResponse struct {
	Valid      bool              `json:"valid"`
	Invitation InvitationSummary `json:"invitation"`
}

// AcceptInvitationRequest consumes a token.
type AcceptInvitationRequest struct {
	Token string `json:"token"`
}

type AcceptInvitationResponse struct {
	Message      string `json:"message"`
	InvitationID string `json:"invitation_id"`
}

// RegisterRequest consumes a token and creates the account it grants.
type RegisterRequest struct {
	Token    string `json:"token"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type AccountRecord struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type RegisterResponse struct {
	Account AccountRecord `json:"account"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// BootstrapRequest creates the first admin on an empty system.
type BootstrapRequest struct {
	Token    string `json:"token"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type BootstrapResponse struct {
	AccountID string `json:"account_id"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
