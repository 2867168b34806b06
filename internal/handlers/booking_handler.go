package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wavehouse/studio-booking/internal/dto"
	"github.com/wavehouse/studio-booking/internal/httperr"
	"github.com/wavehouse/studio-booking/internal/httpresp"
	"github.com/wavehouse/studio-booking/internal/middleware"
	ucBooking "github.com/wavehouse/studio-booking/internal/usecase/booking"
)

type BookingHandler struct {
	submit  *ucBooking.SubmitBooking
	confirm *ucBooking.ConfirmBooking
	cancel  *ucBooking.CancelBooking
	list    *ucBooking.ListBookings
}

func NewBookingHandler(
	submit *ucBooking.SubmitBooking,
	confirm *ucBooking.ConfirmBooking,
	cancel *ucBooking.CancelBooking,
	list *ucBooking.ListBookings,
) *BookingHandler {
	return &BookingHandler{
		submit:  submit,
		confirm: confirm,
		cancel:  cancel,
		list:    list,
	}
}

type SubmitBookingRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ServiceType string `json:"service_type"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Notes       string `json:"notes"`
}

func (h *BookingHandler) Submit(c *gin.Context) {
	var req SubmitBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.submit.Execute(c.Request.Context(), ucBooking.SubmitInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ServiceType: req.ServiceType,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Notes:       req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *BookingHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	bookings, err := h.list.Execute(
		c.Request.Context(),
		c.Query("status"),
		c.Query("email"),
		limit,
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, dto.FromBookings(bookings))
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.confirm.Execute(c.Request.Context(), id, middleware.Actor(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.FromBooking(b))
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), id, middleware.Actor(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.FromBooking(b))
}

func bookingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.Respond(c, httperr.ErrValidation("invalid_booking_id"))
		return 0, false
	}
	return uint(id), true
}
