package routes

import (
	"net/http"
	"time"

	"hogarlink/handlers"
	"hogarlink/middleware"
	"hogarlink/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers public catalog browsing endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.ListServices)
		api.GET("/:id", hb.GetService)
	}
}

// RegisterCheckoutRoutes sets up the endpoints for the checkout flow.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	checkoutGroup := r.Group("/api/checkout")
	{
		checkoutGroup.Use(middleware.JWTAuthUserMiddleware())
		checkoutGroup.POST("/session", hb.StartSession)
		checkoutGroup.GET("/session/:sessionID", hb.GetQuote)
		checkoutGroup.PUT("/session/:sessionID", hb.UpdateSelections)
		checkoutGroup.POST("/session/:sessionID/lock", hb.LockRate)
		checkoutGroup.POST("/session/:sessionID/confirm", hb.ConfirmCheckout)
		checkoutGroup.DELETE("/session/:sessionID", hb.CancelCheckout)
	}
}

// RegisterBookingRoutes registers booking record endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthUserMiddleware())
		bookingGroup.GET("", hb.ListMyBookings)
		bookingGroup.GET("/:id", hb.GetBooking)
	}
}

// RegisterRateRoutes registers the public exchange-rate endpoint.
func RegisterRateRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/rates/current", hb.GetCurrentRate)
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.LoginUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("/me", hb.GetMeHandler)
		api.PUT("/fcm-token", hb.UpdateFCMToken)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.GET("/bookings", hb.AdminListBookings)
		adminGroup.PUT("/bookings/:id/status", hb.AdminUpdateBookingStatus)
		adminGroup.POST("/checkout/:sessionID/unlock", hb.AdminUnlockSessionRate)
		adminGroup.POST("/rates/refresh", hb.AdminRefreshRate)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterCheckoutRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterRateRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
