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

type InvitationVerifyHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Verify Invitation Endpoint
//	@Description	Check an invitation token without consuming it. Returns the invitation summary for a pre-registration screen. Never reveals the invitation id or usage details.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		academysdk.VerifyInvitationRequest	true	"Verify request"
//	@Success		200		{object}	academysdk.VerifyInvitationResponse	"valid, invitation"
//	@Failure		400		{object}	academysdk.ErrorResponse			"error"
//	@Failure		404		{object}	academysdk.ErrorResponse			"error"
//	@Failure		500		{object}	academysdk.ErrorResponse			"error"
//	@Router			/invitations/verify [post].
func (h *InvitationVerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req academysdk.VerifyInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Token == "" {
		httpx.WriteError(w, http.StatusBadRequest, "token is required")
		return
	}

	sum, err := h.InvitationService.Verify(ctx, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvitationNotFound):
			httpx.WriteError(w, http.StatusNotFound, "Invitation not found")
		case errors.Is(err, service.ErrInvitationUsed):
			httpx.WriteError(w, http.StatusBadRequest, "This invitation has already been used")
		case errors.Is(err, service.ErrInvitationExpired):
			httpx.WriteError(w, http.StatusBadRequest, "This invitation has expired")
		case errors.Is(err, service.ErrAccountExists):
			httpx.WriteError(w, http.StatusBadRequest, "An account with this email already exists")
		default:
			log.Error("failed to verify invitation", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to verify invitation")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, academysdk.VerifyInvitationResponse{
		Valid: true,
		Invitation: academysdk.InvitationSummary{
			Email:     sum.Email,
			Role:      sum.Role.String(),
			InvitedBy: sum.InvitedBy,
			ExpiresAt: sum.ExpiresAt,
		},
	})
}
