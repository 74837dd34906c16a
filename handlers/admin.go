package handlers

import (
	"net/http"
	"strconv"

	bookingRepo "hogarlink/database/repository/booking"
	"hogarlink/models"
	"hogarlink/services/checkout"
	"hogarlink/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes operational endpoints.
type AdminHandler struct {
	Bookings bookingRepo.BookingRepository
	Checkout checkout.CheckoutService
}

func NewAdminHandler(bookings bookingRepo.BookingRepository, checkoutSvc checkout.CheckoutService) *AdminHandler {
	return &AdminHandler{Bookings: bookings, Checkout: checkoutSvc}
}

// ListBookingsHandler returns the most recent bookings.
func (h *AdminHandler) ListBookingsHandler(c *gin.Context) {
	limit := int64(100)
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	bookings, err := h.Bookings.List(c.Request.Context(), limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// UpdateBookingStatusHandler sets a booking's status, e.g. cancelling a
// confirmed booking after a refund.
func (h *AdminHandler) UpdateBookingStatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.Status != models.BookingStatusConfirmed && input.Status != models.BookingStatusCancelled {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking status", input.Status)
		return
	}

	if err := h.Bookings.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status); err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": input.Status})
}

// UnlockSessionRateHandler reverts a checkout session to the live rate.
// Customers cannot reach this; it exists for support interventions.
func (h *AdminHandler) UnlockSessionRateHandler(c *gin.Context) {
	quote, err := h.Checkout.UnlockRate(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "checkout session not found or expired", "")
		return
	}
	c.JSON(http.StatusOK, quote)
}
