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

type InvitationIssueHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Issue Invitation Endpoint
//	@Description	Issue a new invitation token for the given email and role. Course leaders may only invite students; admins may invite any role. The token is returned once and never again.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		academysdk.IssueInvitationRequest	true	"Invitation request"
//	@Success		201		{object}	academysdk.IssueInvitationResponse	"message, invitation"
//	@Failure		400		{object}	academysdk.ErrorResponse			"error"
//	@Failure		401		{object}	academysdk.ErrorResponse			"error"
//	@Failure		403		{object}	academysdk.ErrorResponse			"error"
//	@Failure		500		{object}	academysdk.ErrorResponse			"error"
//	@Security		BearerAuth
//	@Router			/invitations [post].
func (h *InvitationIssueHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req academysdk.IssueInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	inviterID := httpx.AccountIDFromCtx(ctx)
	if inviterID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	inv, err := h.InvitationService.Issue(ctx, req.Email, req.Role, inviterID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			httpx.WriteError(w, http.StatusBadRequest, "A valid email address is required")
		case errors.Is(err, service.ErrInvalidRole):
			httpx.WriteError(w, http.StatusBadRequest, "Role must be one of student, course_leader, or admin")
		case errors.Is(err, service.ErrRoleNotAllowed):
			httpx.WriteError(w, http.StatusForbidden, "You may not issue invitations for this role")
		case errors.Is(err, service.ErrInviterSuspended), errors.Is(err, service.ErrInviterNotFound):
			httpx.WriteError(w, http.StatusForbidden, "Your account is not permitted to issue invitations")
		default:
			log.Error("failed to issue invitation", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to issue invitation")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, academysdk.IssueInvitationResponse{
		Message: "Invitation issued successfully",
		Invitation: academysdk.InvitationRecord{
			ID:        inv.ID,
			Email:     inv.Email,
			Role:      inv.Role.String(),
			Token:     inv.Token,
			InvitedBy: inv.InvitedBy,
			ExpiresAt: inv.ExpiresAt,
			CreatedAt: inv.CreatedAt,
		},
	})
}
