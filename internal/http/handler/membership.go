package handler

import (
	"net/http"

	"artdesk.app/api/internal/http/dto"
	"artdesk.app/api/internal/model"
	"artdesk.app/api/internal/service"
	"github.com/gin-gonic/gin"
)

type MembershipHandler struct {
	membershipService service.MembershipService
}

func NewMembershipHandler(membershipService service.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService}
}

func (h *MembershipHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	clientID, ok := pathID(c, "clientID")
	if !ok {
		return
	}

	members, err := h.membershipService.List(ctx, CurrentUser(c).ID, clientID)
	if err != nil {
		respondServiceError(c, err, "failed to list members")
		return
	}

	resp := dto.ListMembershipsResponse{Members: make([]dto.MembershipResponse, len(members))}
	for i, m := range members {
		resp.Members[i] = dto.ToMembershipResponse(m)
	}

	c.JSON(http.StatusOK, resp)
}

func (h *MembershipHandler) UpdateRole(c *gin.Context) {
	ctx := c.Request.Context()

	clientID, ok := pathID(c, "clientID")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userID")
	if !ok {
		return
	}

	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	membership, err := h.membershipService.UpdateRole(ctx, CurrentUser(c).ID, clientID, userID, model.Role(req.Role))
	if err != nil {
		respondServiceError(c, err, "failed to update role")
		return
	}

	c.JSON(http.StatusOK, dto.ToMembershipResponse(*membership))
}

func (h *MembershipHandler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	clientID, ok := pathID(c, "clientID")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userID")
	if !ok {
		return
	}

	if err := h.membershipService.Remove(ctx, CurrentUser(c).ID, clientID, userID); err != nil {
		respondServiceError(c, err, "failed to remove member")
		return
	}

	c.Status(http.StatusNoContent)
}
