package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wavehouse/studio-booking/internal/audit"
	"github.com/wavehouse/studio-booking/internal/httperr"
	"github.com/wavehouse/studio-booking/internal/httpresp"
	"github.com/wavehouse/studio-booking/internal/models"
	"github.com/wavehouse/studio-booking/internal/validators"
)

type auditReader interface {
	Find(ctx context.Context, q audit.Query) ([]models.AuditLog, int64, error)
}

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	reader auditReader
}

func NewAuditLogsHandler(reader auditReader) *AuditLogsHandler {
	return &AuditLogsHandler{reader: reader}
}

// List accepts action, entity, email, from and to (YYYY-MM-DD, inclusive)
// plus page and limit.
func (h *AuditLogsHandler) List(c *gin.Context) {
	q := audit.Query{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
	}

	if email := c.Query("email"); email != "" {
		q.Email = validators.NormalizeEmail(email)
	}

	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))

	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(validators.DateLayout, raw)
		if err != nil {
			httperr.Respond(c, httperr.ErrValidation("invalid_date"))
			return
		}
		q.From = from
	}

	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(validators.DateLayout, raw)
		if err != nil {
			httperr.Respond(c, httperr.ErrValidation("invalid_date"))
			return
		}
		q.To = to.AddDate(0, 0, 1)
	}

	q.Normalize()

	logs, total, err := h.reader.Find(c.Request.Context(), q)
	if err != nil {
		httperr.Respond(c, httperr.Storage("audit_list_failed", err))
		return
	}

	httpresp.Page(c, logs, q.Page, q.Limit, total)
}
