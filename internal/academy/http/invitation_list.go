package http

import (
	"net/http"

	"github.com/upperhound/academy/internal/academy/service"
	"github.com/upperhound/academy/pkg/academysdk"
	"github.com/upperhound/academy/pkg/httpx"
	"github.com/upperhound/academy/pkg/slogx"
)

type InvitationListHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		List Invitations Endpoint
//	@Description	List recent invitations for the admin dashboard. Token values are never included; they are shown once at issuance only.
//	@Tags			Invitations
//	@Produce		json
//	@Success		200	{object}	academysdk.ListInvitationsResponse	"invitations"
//	@Failure		401	{object}	academysdk.ErrorResponse			"error"
//	@Failure		403	{object}	academysdk.ErrorResponse			"error"
//	@Failure		500	{object}	academysdk.ErrorResponse			"error"
//	@Security		BearerAuth
//	@Router			/invitations [get].
func (h *InvitationListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	list, err := h.InvitationService.ListRecent(ctx, 50)
	if err != nil {
		log.Error("failed to list invitations", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to list invitations")
		return
	}

	records := make([]academysdk.InvitationRecord, 0, len(list))
	for _, inv := range list {
		records = append(records, academysdk.InvitationRecord{
			ID:        inv.ID,
			Email:     inv.Email,
			Role:      inv.Role.String(),
			InvitedBy: inv.InvitedBy,
			ExpiresAt: inv.ExpiresAt,
			UsedAt:    inv.UsedAt,
			CreatedAt: inv.CreatedAt,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, academysdk.ListInvitationsResponse{Invitations: records})
}
