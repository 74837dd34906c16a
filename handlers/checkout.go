package handlers

import (
	"errors"
	"net/http"

	"hogarlink/middleware"
	"hogarlink/models"
	"hogarlink/services/checkout"
	"hogarlink/services/currency"
	"hogarlink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler exposes the checkout session flow over HTTP.
type CheckoutHandler struct {
	Svc    checkout.CheckoutService
	Logger *zap.Logger
}

func NewCheckoutHandler(svc checkout.CheckoutService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{Svc: svc, Logger: logger}
}

// StartSession opens a checkout session and returns the first quote.
func (h *CheckoutHandler) StartSession(c *gin.Context) {
	var input models.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	quote, err := h.Svc.StartSession(c.Request.Context(), middleware.GetUserID(c), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// UpdateSelections replaces the addon selections of an open session.
func (h *CheckoutHandler) UpdateSelections(c *gin.Context) {
	var input models.UpdateSelectionsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	quote, err := h.Svc.UpdateSelections(c.Request.Context(), middleware.GetUserID(c), c.Param("sessionID"), input.Selections)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// GetQuote returns the current quote for a session.
func (h *CheckoutHandler) GetQuote(c *gin.Context) {
	quote, err := h.Svc.Quote(c.Request.Context(), middleware.GetUserID(c), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// LockRate freezes the session's exchange rate for the rest of checkout.
func (h *CheckoutHandler) LockRate(c *gin.Context) {
	quote, err := h.Svc.LockRate(c.Request.Context(), middleware.GetUserID(c), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// Confirm charges the booking and returns the persisted record.
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	var input models.ConfirmCheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := h.Svc.Confirm(c.Request.Context(), middleware.GetUserID(c), c.Param("sessionID"), input.PaymentMethodID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// Cancel discards an open session.
func (h *CheckoutHandler) Cancel(c *gin.Context) {
	if err := h.Svc.Cancel(c.Request.Context(), middleware.GetUserID(c), c.Param("sessionID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

func (h *CheckoutHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, checkout.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "checkout session not found or expired", "")
	case errors.Is(err, checkout.ErrUnknownService):
		utils.JSONError(c, http.StatusNotFound, "unknown service", "")
	case errors.Is(err, checkout.ErrSessionOwnership):
		utils.JSONError(c, http.StatusForbidden, "forbidden", "")
	case errors.Is(err, currency.ErrUnsupportedCurrencyPair):
		utils.JSONError(c, http.StatusBadRequest, "unsupported currency", err.Error())
	default:
		h.Logger.Error("checkout request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "checkout failed", err.Error())
	}
}
