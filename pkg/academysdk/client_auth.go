package academysdk

import (
	"context"
	"net/http"
)

// Register consumes an invitation token and creates the account it grants.
func (c *SDKClient) Register(ctx context.Context, token, fullName, password string) (*RegisterResponse, error) {
	resp, err := c.postJSON(ctx, "/auth/register", RegisterRequest{
		Token:    token,
		FullName: fullName,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var out RegisterResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates an account and returns an authenticated Session for
// the staff surface.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.postJSON(ctx, "/auth/login", LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var out LoginResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return newSession(c, out.AccessToken), nil
}

// Bootstrap creates the first admin account on an empty system, gated by the
// deployment's bootstrap token.
func (c *SDKClient) Bootstrap(ctx context.Context, token, email, fullName, password string) (*BootstrapResponse, error) {
	resp, err := c.postJSON(ctx, "/bootstrap", BootstrapRequest{
		Token:    token,
		Email:    email,
		FullName: fullName,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var out BootstrapResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}
