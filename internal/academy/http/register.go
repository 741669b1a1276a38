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

type RegisterHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Registration Endpoint
//	@Description	Consume an invitation token and create the account it grants. The token claim and account creation are atomic; a failed registration leaves the invitation honorable.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		academysdk.RegisterRequest	true	"Registration request"
//	@Success		201		{object}	academysdk.RegisterResponse	"account"
//	@Failure		400		{object}	academysdk.ErrorResponse	"error"
//	@Failure		404		{object}	academysdk.ErrorResponse	"error"
//	@Failure		409		{object}	academysdk.ErrorResponse	"error"
//	@Failure		500		{object}	academysdk.ErrorResponse	"error"
//	@Router			/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req academysdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	account, err := h.AccountService.Register(ctx, req.Token, req.FullName, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRegistration):
			httpx.WriteError(w, http.StatusBadRequest, "token, full_name, and a password of at least 12 characters are required")
		case errors.Is(err, service.ErrInvitationNotFound):
			httpx.WriteError(w, http.StatusNotFound, "Invitation not found or already used")
		case errors.Is(err, service.ErrEmailTaken):
			httpx.WriteError(w, http.StatusConflict, "An account with this email already exists")
		default:
			log.Error("failed to register account", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to register account")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, academysdk.RegisterResponse{
		Account: academysdk.AccountRecord{
			ID:       account.ID,
			Email:    account.Email,
			FullName: account.FullName,
			Role:     account.Role.String(),
		},
	})
}
