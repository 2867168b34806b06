package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/wavehouse/studio-booking/internal/httperr"
	"github.com/wavehouse/studio-booking/internal/httpresp"
	ucContact "github.com/wavehouse/studio-booking/internal/usecase/contact"
)

type ContactHandler struct {
	submit *ucContact.SubmitContact
}

func NewContactHandler(submit *ucContact.SubmitContact) *ContactHandler {
	return &ContactHandler{submit: submit}
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.submit.Execute(c.Request.Context(), req.Name, req.Email, req.Message); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Contact form submitted successfully")
}
