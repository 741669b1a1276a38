package academysdk

import (
	"context"
	"net/http"
)

// VerifyInvitation checks an invitation token without consuming it.
// Failures surface as *APIError carrying the service's message.
func (c *SDKClient) VerifyInvitation(ctx context.Context, token string) (*VerifyInvitationResponse, error) {
	resp, err := c.postJSON(ctx, "/invitations/verify", VerifyInvitationRequest{Token: token})
	if err != nil {
		return nil, err
	}

	var out VerifyInvitationResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AcceptInvitation consumes an invitation token. A token that is unknown,
// already used, or expired yields a 404 *APIError; acceptance does not reveal
// which.
func (c *SDKClient) AcceptInvitation(ctx context.Context, token string) (*AcceptInvitationResponse, error) {
	resp, err := c.postJSON(ctx, "/invitations/accept", AcceptInvitationRequest{Token: token})
	if err != nil {
		return nil, err
	}

	var out AcceptInvitationResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
