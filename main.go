package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hogarlink/config"
	"hogarlink/cron"
	"hogarlink/database"
	bookingRepoPkg "hogarlink/database/repository/booking"
	catalogRepoPkg "hogarlink/database/repository/catalog"
	invoiceRepoPkg "hogarlink/database/repository/invoice"
	userRepoPkg "hogarlink/database/repository/user"
	"hogarlink/handlers"
	"hogarlink/middleware"
	"hogarlink/routes"
	"hogarlink/services/catalog"
	"hogarlink/services/checkout"
	"hogarlink/services/currency"
	"hogarlink/services/notification"
	"hogarlink/services/pricing"
	"hogarlink/services/user"
	"hogarlink/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitCheckoutCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	invoiceRepo := invoiceRepoPkg.NewMongoInvoiceRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// The catalog is read-only reference data, loaded once at startup.
	catalogService, err := catalog.NewDefaultCatalogService(context.Background(), catalogRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load service catalog: %v", err)
	}

	userService := &user.DefaultUserService{Repo: userRepo}

	notificationService, err := notification.NewDefaultNotificationService(userService)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}
	cron.InitReceiptWorker(notificationService)

	// Live exchange-rate feed.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()
	rateFeed := currency.NewFeed(
		config.AppConfig.RateSourceURL,
		config.AppConfig.DefaultMXNPerUSD,
		time.Duration(config.AppConfig.RateFetchTimeoutSeconds)*time.Second,
		logger,
	)
	rateFeed.Start(rootCtx, time.Duration(config.AppConfig.RateRefreshMinutes)*time.Minute)

	checkoutService := &checkout.DefaultCheckoutService{
		Catalog:   catalogService,
		Pricing:   pricing.NewDefaultEngine(),
		Rates:     rateFeed,
		Formatter: currency.LocaleFormatter{},
		Store:     checkout.NewRedisSessionStore(utils.GetCheckoutCacheClient()),
		Gateway:   checkout.NewStripeGateway(logger),
		Bookings:  bookingRepo,
		Invoices:  invoiceRepo,
		Receipts:  cron.NewReceiptEnqueuer(),
		Logger:    logger,
	}

	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	ratesHandler := handlers.NewRatesHandler(rateFeed)
	userHandler := handlers.NewUserHandler(userService)
	bookingHandler := handlers.NewBookingHandler(bookingRepo)
	adminHandler := handlers.NewAdminHandler(bookingRepo, checkoutService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Catalog endpoints.
		ListServices: catalogHandler.ListServices,
		GetService:   catalogHandler.GetService,

		// Checkout endpoints.
		StartSession:     checkoutHandler.StartSession,
		UpdateSelections: checkoutHandler.UpdateSelections,
		GetQuote:         checkoutHandler.GetQuote,
		LockRate:         checkoutHandler.LockRate,
		ConfirmCheckout:  checkoutHandler.Confirm,
		CancelCheckout:   checkoutHandler.Cancel,

		// Booking endpoints.
		ListMyBookings: bookingHandler.ListMyBookings,
		GetBooking:     bookingHandler.GetBooking,

		// Exchange-rate endpoints.
		GetCurrentRate: ratesHandler.GetCurrentRate,

		// User endpoints.
		RegisterUserHandler: userHandler.Register,
		LoginUserHandler:    userHandler.Login,
		GetMeHandler:        userHandler.GetMe,
		UpdateFCMToken:      userHandler.UpdateFCMToken,

		// Admin endpoints.
		AdminListBookings:        adminHandler.ListBookingsHandler,
		AdminUpdateBookingStatus: adminHandler.UpdateBookingStatusHandler,
		AdminUnlockSessionRate:   adminHandler.UnlockSessionRateHandler,
		AdminRefreshRate:         ratesHandler.ForceRefresh,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetCheckoutCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
