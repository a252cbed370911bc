package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomyy/config"
	"roomyy/database"
	bookingRepoPkg "roomyy/database/repository/booking"
	chatRepoPkg "roomyy/database/repository/chat"
	contactRepoPkg "roomyy/database/repository/contact"
	propertyRepoPkg "roomyy/database/repository/property"
	userRepoPkg "roomyy/database/repository/user"
	"roomyy/handlers"
	"roomyy/middleware"
	"roomyy/routes"
	"roomyy/services/booking"
	"roomyy/services/chat"
	"roomyy/services/property"
	"roomyy/services/storage"
	"roomyy/services/user"
	"roomyy/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB(logger)
	utils.InitAuthCache()

	storageService := buildStorage()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	propertyRepo := propertyRepoPkg.NewMongoPropertyRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	chatRepo := chatRepoPkg.NewMongoChatRepo()
	contactRepo := contactRepoPkg.NewMongoContactRepo()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	propertyService := &property.DefaultPropertyService{
		Repo:     propertyRepo,
		UserRepo: userRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:         bookingRepo,
		PropertyRepo: propertyRepo,
		UserRepo:     userRepo,
	}
	chatService := &chat.DefaultChatService{
		Repo:        chatRepo,
		BookingRepo: bookingRepo,
		UserRepo:    userRepo,
	}

	handlerBundle := &handlers.HandlerBundle{
		UserRepo:   userRepo,
		Auth:       handlers.NewAuthHandler(userService),
		Users:      handlers.NewUserHandler(userService),
		Properties: handlers.NewPropertyHandler(propertyService, bookingService, storageService),
		Bookings:   handlers.NewBookingHandler(bookingService, storageService),
		Chats:      handlers.NewChatHandler(chatService),
		Contact:    handlers.NewContactHandler(contactRepo),
	}

	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "5002"
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
	if err := database.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to close database connection: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// buildStorage selects the upload backend from configuration.
func buildStorage() storage.StorageService {
	logger := utils.GetLogger()

	if config.AppConfig.StorageDriver == "cloudinary" {
		svc, err := storage.NewCloudinaryStorage()
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
		}
		return svc
	}

	svc, err := storage.NewLocalStorage(config.AppConfig.UploadDir)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize local storage service: %v", err)
	}
	return svc
}
