package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/wavehouse/studio-booking/internal/httperr"
	"github.com/wavehouse/studio-booking/internal/httpresp"
	"github.com/wavehouse/studio-booking/internal/middleware"
	ucVerification "github.com/wavehouse/studio-booking/internal/usecase/verification"
)

// ======================================================
// HANDLER
// ======================================================

type VerificationHandler struct {
	checkClient      *ucVerification.CheckClient
	createSession    *ucVerification.CreateSession
	complete         *ucVerification.Complete
	getStatus        *ucVerification.GetStatus
	sendInstructions *ucVerification.SendInstructions
}

func NewVerificationHandler(
	checkClient *ucVerification.CheckClient,
	createSession *ucVerification.CreateSession,
	complete *ucVerification.Complete,
	getStatus *ucVerification.GetStatus,
	sendInstructions *ucVerification.SendInstructions,
) *VerificationHandler {
	return &VerificationHandler{
		checkClient:      checkClient,
		createSession:    createSession,
		complete:         complete,
		getStatus:        getStatus,
		sendInstructions: sendInstructions,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type EmailRequest struct {
	Email string `json:"email"`
}

type EmailNameRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body must be valid JSON.")
		return false
	}
	return true
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *VerificationHandler) CheckClient(c *gin.Context) {
	var req EmailRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.checkClient.Execute(c.Request.Context(), req.Email)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *VerificationHandler) CreateSession(c *gin.Context) {
	var req EmailNameRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.createSession.Execute(c.Request.Context(), req.Email, req.Name)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, out)
}

// CompleteMock finishes a session started with the mock provider.
func (h *VerificationHandler) CompleteMock(c *gin.Context) {
	var req EmailRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.complete.Execute(c.Request.Context(), req.Email, "mock_provider")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out.Message = "Mock verification completed successfully"
	httpresp.OK(c, out)
}

func (h *VerificationHandler) MarkVerified(c *gin.Context) {
	var req EmailRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.complete.Execute(c.Request.Context(), req.Email, middleware.Actor(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *VerificationHandler) SendEmail(c *gin.Context) {
	var req EmailNameRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.sendInstructions.Execute(c.Request.Context(), req.Email, req.Name); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Verification email sent successfully")
}

func (h *VerificationHandler) Status(c *gin.Context) {
	out, err := h.getStatus.Execute(c.Request.Context(), c.Param("email"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, out)
}
