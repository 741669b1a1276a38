package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/upperhound/academy/internal/academy/service"
	"github.com/upperhound/academy/pkg/academysdk"
	"github.com/upperhound/academy/pkg/httpx"
	"github.com/upperhound/academy/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP godoc
//
//	@Summary		Bootstrap Endpoint
//	@Description	Create the first admin account on an empty system. Gated by the deployment's bootstrap token and refused once any account exists.
//	@Tags			System
//	@Accept			json
//	@Produce		json
//	@Param			request	body		academysdk.BootstrapRequest		true	"Bootstrap request"
//	@Success		201		{object}	academysdk.BootstrapResponse	"account_id"
//	@Failure		400		{object}	academysdk.ErrorResponse		"error"
//	@Failure		401		{object}	academysdk.ErrorResponse		"error"
//	@Failure		409		{object}	academysdk.ErrorResponse		"error"
//	@Router			/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req academysdk.BootstrapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	accountID, err := h.BootstrapService.Bootstrap(ctx, req.Token, req.Email, req.FullName, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBootstrapAlready):
			httpx.WriteError(w, http.StatusConflict, "System is already bootstrapped")
		case errors.Is(err, service.ErrBootstrapUnauthorized):
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid bootstrap token")
		case errors.Is(err, service.ErrInvalidRegistration):
			httpx.WriteError(w, http.StatusBadRequest, "email, full_name, and a password of at least 12 characters are required")
		default:
			log.Error("failed to bootstrap system", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to bootstrap system")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, academysdk.BootstrapResponse{AccountID: accountID})
}
