package handler

import (
	"net/http"
	"strconv"

	"artdesk.app/api/internal/http/dto"
	"artdesk.app/api/internal/service"
	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	clientService service.ClientService
}

func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

func (h *ClientHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.clientService.Create(ctx, CurrentUser(c).ID, req.ToInput())
	if err != nil {
		respondServiceError(c, err, "failed to create client")
		return
	}

	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

func (h *ClientHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	clients, err := h.clientService.List(ctx, CurrentUser(c).ID)
	if err != nil {
		respondServiceError(c, err, "failed to list clients")
		return
	}

	resp := dto.ListClientsResponse{Clients: make([]dto.ClientResponse, len(clients))}
	for i := range clients {
		resp.Clients[i] = *dto.ToClientResponse(&clients[i])
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ClientHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	clientID, ok := pathID(c, "clientID")
	if !ok {
		return
	}

	client, err := h.clientService.Get(ctx, CurrentUser(c).ID, clientID)
	if err != nil {
		respondServiceError(c, err, "failed to get client")
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

func (h *ClientHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	clientID, ok := pathID(c, "clientID")
	if !ok {
		return
	}

	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.clientService.Update(ctx, CurrentUser(c).ID, clientID, req.ToInput())
	if err != nil {
		respondServiceError(c, err, "failed to update client")
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

func (h *ClientHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	clientID, ok := pathID(c, "clientID")
	if !ok {
		return
	}

	if err := h.clientService.Delete(ctx, CurrentUser(c).ID, clientID); err != nil {
		respondServiceError(c, err, "failed to delete client")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ClientHandler) Restore(c *gin.Context) {
	ctx := c.Request.Context()

	clientID, ok := pathID(c, "clientID")
	if !ok {
		return
	}

	if err := h.clientService.Restore(ctx, CurrentUser(c).ID, clientID); err != nil {
		respondServiceError(c, err, "failed to restore client")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ClientHandler) Collaborators(c *gin.Context) {
	ctx := c.Request.Context()

	clientID, ok := pathID(c, "clientID")
	if !ok {
		return
	}

	list, err := h.clientService.Collaborators(ctx, CurrentUser(c).ID, clientID)
	if err != nil {
		respondServiceError(c, err, "failed to list collaborators")
		return
	}

	resp := dto.CollaboratorsResponse{
		Members:          make([]dto.MembershipResponse, len(list.Memberships)),
		Count:            list.Count,
		MaxCollaborators: list.MaxCollaborators,
	}
	for i, m := range list.Memberships {
		resp.Members[i] = dto.ToMembershipResponse(m)
	}

	c.JSON(http.StatusOK, resp)
}

// pathID parses an int64 path parameter, answering 400 on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
