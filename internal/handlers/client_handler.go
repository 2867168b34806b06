package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wavehouse/studio-booking/internal/domain/client"
	"github.com/wavehouse/studio-booking/internal/dto"
	"github.com/wavehouse/studio-booking/internal/httperr"
	"github.com/wavehouse/studio-booking/internal/httpresp"
)

type ClientHandler struct {
	clients client.Registry
}

func NewClientHandler(clients client.Registry) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// List searches clients by name or email.
func (h *ClientHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	clients, err := h.clients.List(c.Request.Context(), c.Query("query"), limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, dto.FromClients(clients))
}
