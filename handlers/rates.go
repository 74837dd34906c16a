package handlers

import (
	"net/http"
	"time"

	"hogarlink/services/currency"

	"github.com/gin-gonic/gin"
)

// RatesHandler exposes the live exchange rate for display purposes.
type RatesHandler struct {
	Feed *currency.Feed
}

func NewRatesHandler(feed *currency.Feed) *RatesHandler {
	return &RatesHandler{Feed: feed}
}

// GetCurrentRate returns the last-known-good MXN-per-USD rate.
func (h *RatesHandler) GetCurrentRate(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"mxnPerUsd": h.Feed.Current(),
		"checkedAt": time.Now(),
	})
}

// ForceRefresh triggers an immediate rate fetch (admin only). A failed fetch
// keeps the previous rate.
func (h *RatesHandler) ForceRefresh(c *gin.Context) {
	if err := h.Feed.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":     "rate refresh failed, previous rate retained",
			"mxnPerUsd": h.Feed.Current(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mxnPerUsd": h.Feed.Current()})
}
