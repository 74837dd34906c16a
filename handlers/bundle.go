package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups every route handler for registration.
type HandlerBundle struct {
	// Catalog endpoints.
	ListServices gin.HandlerFunc
	GetService   gin.HandlerFunc

	// Checkout endpoints.
	StartSession     gin.HandlerFunc
	UpdateSelections gin.HandlerFunc
	GetQuote         gin.HandlerFunc
	LockRate         gin.HandlerFunc
	ConfirmCheckout  gin.HandlerFunc
	CancelCheckout   gin.HandlerFunc

	// Booking endpoints.
	ListMyBookings gin.HandlerFunc
	GetBooking     gin.HandlerFunc

	// Exchange-rate endpoints.
	GetCurrentRate gin.HandlerFunc

	// User endpoints.
	RegisterUserHandler gin.HandlerFunc
	LoginUserHandler    gin.HandlerFunc
	GetMeHandler        gin.HandlerFunc
	UpdateFCMToken      gin.HandlerFunc

	// Admin endpoints.
	AdminListBookings        gin.HandlerFunc
	AdminUpdateBookingStatus gin.HandlerFunc
	AdminUnlockSessionRate   gin.HandlerFunc
	AdminRefreshRate         gin.HandlerFunc
}
