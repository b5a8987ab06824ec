package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lashstudio/config"
	digest "lashstudio/cron"
	"lashstudio/database"
	bookingRepo "lashstudio/database/repository/booking"
	"lashstudio/handlers"
	"lashstudio/middleware"
	"lashstudio/routes"
	"lashstudio/services/assistant"
	"lashstudio/services/booking"
	"lashstudio/services/notification"
	"lashstudio/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// The Mongo client is constructed once here and injected everywhere;
	// a broken database connection fails the process at startup.
	mongoClient, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	utils.StartHealthMonitor(mongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	bookings := bookingRepo.NewMongoBookingRepo(mongoClient)

	// Services.
	sender := notification.NewSMTPSender(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SMTPUser,
		config.AppConfig.SMTPPassword,
		config.AppConfig.BusinessName,
		logger,
	)

	bookingService := &booking.DefaultBookingService{
		Repo:   bookings,
		Sender: sender,
		Business: booking.Business{
			Name:            config.AppConfig.BusinessName,
			Address:         config.AppConfig.BusinessAddress,
			Contact:         config.AppConfig.BusinessContact,
			InstagramHandle: config.AppConfig.InstagramHandle,
			TikTokHandle:    config.AppConfig.TikTokHandle,
			SiteURL:         config.AppConfig.SiteURL,
			AdminEmail:      config.AppConfig.AdminEmail,
		},
		Logger: logger,
	}

	dispatcher := &assistant.ToolDispatcher{
		Bookings: bookingService,
		Contact:  config.AppConfig.BusinessContact,
		Logger:   logger,
	}
	geminiModel, err := assistant.NewGeminiModel(
		config.AppConfig.GeminiAPIKey,
		assistant.SystemPrompt(config.AppConfig.BusinessName),
		dispatcher,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini model: %v", err)
	}
	assistantService := assistant.NewDefaultAssistantService(geminiModel, logger)

	// Handlers.
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	assistantHandler := handlers.NewAssistantHandler(assistantService, logger)
	adminHandler := handlers.NewAdminHandler(bookingService, config.AppConfig.AdminPIN, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateBookingHandler: bookingHandler.CreateBooking,
		GetBookingHandler:    bookingHandler.GetBooking,
		CancelBookingHandler: bookingHandler.CancelBooking,

		ConverseHandler: assistantHandler.Converse,

		VerifyPINHandler:           adminHandler.VerifyPIN,
		ListBookingsHandler:        adminHandler.ListBookings,
		UpdateBookingStatusHandler: adminHandler.UpdateBookingStatus,
		DeleteBookingHandler:       adminHandler.DeleteBooking,
		DeleteAllBookingsHandler:   adminHandler.DeleteAllBookings,
		ExportBookingsPDFHandler:   adminHandler.ExportBookingsPDF,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Daily admin digest.
	digestWorker := digest.NewDigestWorker(bookingService, sender, config.AppConfig.AdminEmail, logger)
	digestWorker.Start()

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

	digestWorker.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := mongoClient.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect MongoDB client: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
