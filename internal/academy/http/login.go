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

type LoginHandler struct {
	AccountService *service.AccountService
	TokenService   *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Authenticate with email and password and receive a signed session token for the staff surface.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		academysdk.LoginRequest		true	"Login request"
//	@Success		200		{object}	academysdk.LoginResponse	"access_token, token_type, expires_in"
//	@Failure		400		{object}	academysdk.ErrorResponse	"error"
//	@Failure		401		{object}	academysdk.ErrorResponse	"error"
//	@Failure		500		{object}	academysdk.ErrorResponse	"error"
//	@Router			/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req academysdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Email == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	account, err := h.AccountService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		log.Error("failed to authenticate account", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	token, expiresIn, err := h.TokenService.IssueSession(ctx, account)
	if err != nil {
		log.Error("failed to issue session token", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, academysdk.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	})
}
