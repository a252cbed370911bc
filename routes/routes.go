package routes

import (
	"time"

	"roomyy/config"
	"roomyy/handlers"
	"roomyy/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and login.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)
	}
}

// RegisterUserRoutes registers account lookups.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.GET("", hb.Users.List)
	}
}

// RegisterPropertyRoutes registers the listing catalog plus the legacy open
// booking endpoints that older frontend builds still call.
func RegisterPropertyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/properties")
	{
		api.GET("", hb.Properties.List)
		api.GET("/owner/:ownerId", hb.Properties.OwnerProperties)

		// Legacy booking endpoints. Creation is open; reads of renter
		// details require the booking's owner or an admin.
		api.POST("/booking", hb.Properties.LegacyCreateBooking)
		api.GET("/bookings/owner/:ownerId", hb.Properties.LegacyOwnerBookings)
		api.GET("/bookings/:bookingId", middleware.AuthMiddleware(hb.UserRepo), hb.Properties.LegacyGetBooking)

		api.POST("", middleware.AuthMiddleware(hb.UserRepo), hb.Properties.Create)

		// Registered last so the static segments above win.
		api.GET("/:id", hb.Properties.GetByID)
	}
}

// RegisterBookingRoutes registers the authenticated booking engine endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.POST("", hb.Bookings.Create)
		api.GET("/owner/mine", hb.Bookings.OwnerBookings)
		api.GET("/property/:propertyId", hb.Bookings.PropertyBookings)
		api.GET("/:id", hb.Bookings.GetByID)
		api.PATCH("/:id/status", hb.Bookings.UpdateStatus)
	}
}

// RegisterChatRoutes registers the negotiation thread endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.POST("", hb.Chats.CreateOrGet)
		api.POST("/:chatId/message", hb.Chats.SendMessage)
		api.PUT("/:chatId/purchase", hb.Chats.UpdatePurchaseDetails)
		api.GET("/user/:userId", hb.Chats.UserChats)
		api.GET("/:chatId", hb.Chats.GetChat)
	}
}

// RegisterContactRoutes registers the contact-form endpoint.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/contact")
	{
		api.POST("", hb.Contact.Submit)
	}
}

// RegisterHealthRoute registers the liveness endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Locally stored uploads are served statically, as the frontend expects.
	r.Static("/uploads", config.AppConfig.UploadDir)

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterPropertyRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterHealthRoute(r)
}
