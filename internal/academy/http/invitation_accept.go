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

type InvitationAcceptHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Accept Invitation Endpoint
//	@Description	Consume an invitation token. Acceptance is a single atomic claim; a token that is unknown, already used, or expired is reported uniformly as not found.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		academysdk.AcceptInvitationRequest	true	"Accept request"
//	@Success		200		{object}	academysdk.AcceptInvitationResponse	"message, invitation_id"
//	@Failure		400		{object}	academysdk.ErrorResponse			"error"
//	@Failure		404		{object}	academysdk.ErrorResponse			"error"
//	@Failure		500		{object}	academysdk.ErrorResponse			"error"
//	@Router			/invitations/accept [post].
func (h *InvitationAcceptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req academysdk.AcceptInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Token == "" {
		httpx.WriteError(w, http.StatusBadRequest, "token is required")
		return
	}

	inv, err := h.InvitationService.Accept(ctx, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvitationNotFound):
			httpx.WriteError(w, http.StatusNotFound, "Invitation not found or already used")
		default:
			log.Error("failed to accept invitation", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to accept invitation")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, academysdk.AcceptInvitationResponse{
		Message:      "Invitation accepted successfully",
		InvitationID: inv.ID,
	})
}
