package handlers

import (
	"errors"
	"net/http"

	bookingRepo "carelink/database/repository/booking"
	"carelink/models"
	"carelink/services/booking"
	"carelink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking coordinator over HTTP.
type BookingHandler struct {
	Coordinator booking.Coordinator
}

func NewBookingHandler(coordinator booking.Coordinator) *BookingHandler {
	return &BookingHandler{Coordinator: coordinator}
}

// BookHandler validates and records a booking request for the authenticated
// patient. Validation failures map to 400/404/409 with the typed detail.
func (h *BookingHandler) BookHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	req.RequesterID = c.GetString("patientID")

	confirmation, err := h.Coordinator.Book(c.Request.Context(), req)
	if err != nil {
		var missingErr *booking.MissingFieldError
		var unknownErr *booking.UnknownProviderError
		var notOfferedErr *booking.SlotNotOfferedError
		switch {
		case errors.As(err, &missingErr):
			utils.JSONFieldError(c, http.StatusBadRequest, "missing required fields", missingErr.Fields)
		case errors.As(err, &unknownErr):
			utils.JSONError(c, http.StatusNotFound, "unknown provider", unknownErr.ID)
		case errors.As(err, &notOfferedErr):
			utils.JSONError(c, http.StatusConflict, "slot not offered", notOfferedErr.Error())
		case errors.Is(err, bookingRepo.ErrSlotTaken):
			utils.JSONError(c, http.StatusConflict, "slot already booked", err.Error())
		default:
			logger.Error("BookHandler: save failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to record booking", err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, confirmation)
}

// ListUpcomingHandler returns the authenticated patient's future bookings.
func (h *BookingHandler) ListUpcomingHandler(c *gin.Context) {
	requesterID := c.GetString("patientID")
	bookings, err := h.Coordinator.ListUpcoming(c.Request.Context(), requesterID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
