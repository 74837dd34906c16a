package handlers

import (
	"net/http"

	bookingRepo "hogarlink/database/repository/booking"
	"hogarlink/middleware"
	"hogarlink/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves confirmed booking records.
type BookingHandler struct {
	Bookings bookingRepo.BookingRepository
}

func NewBookingHandler(bookings bookingRepo.BookingRepository) *BookingHandler {
	return &BookingHandler{Bookings: bookings}
}

// ListMyBookings returns the authenticated user's bookings, newest first.
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	bookings, err := h.Bookings.ListByUser(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetBooking returns one booking, only to its owner.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.Bookings.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
		return
	}
	if booking.UserID != middleware.GetUserID(c) {
		utils.JSONError(c, http.StatusForbidden, "forbidden", "")
		return
	}
	c.JSON(http.StatusOK, booking)
}
