package academysdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Session is an authenticated handle on the staff surface. Sessions are
// created by SDKClient.Login and carry the bearer token on every request.
type Session struct {
	client      *SDKClient
	accessToken string
}

func newSession(c *SDKClient, accessToken string) *Session {
	return &Session{
		client:      c,
		accessToken: accessToken,
	}
}

// AccessToken exposes the raw bearer token, e.g. for probing auth failures
// in tests.
func (s *Session) AccessToken() string { return s.accessToken }

// IssueInvitation mints an invitation for the given email and role. The
// response carries the raw token; this is the only time it is surfaced.
func (s *Session) IssueInvitation(ctx context.Context, email, role string) (*IssueInvitationResponse, error) {
	body, err := json.Marshal(IssueInvitationRequest{Email: email, Role: role})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.client.url("/invitations"), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.accessToken)

	resp, err := s.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	var out IssueInvitationResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInvitations returns the recent invitations feed (admin only). Records
// never include token values.
func (s *Session) ListInvitations(ctx context.Context) (*ListInvitationsResponse, error) {
	resp, err := s.client.get(ctx, "/invitations", s.accessToken)
	if err != nil {
		return nil, err
	}

	var out ListInvitationsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
