package academysdk

import (
	"context"
	"net/http"
)

// Livez reports basic service liveness.
func (c *SDKClient) Livez(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.get(ctx, "/livez", "")
	if err != nil {
		return nil, err
	}

	var out HealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Readyz reports service readiness including dependency checks.
func (c *SDKClient) Readyz(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.get(ctx, "/readyz", "")
	if err != nil {
		return nil, err
	}

	var out HealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
