package routes

import (
	adminapi "gallery-app/internal/api/admin"
	"gallery-app/internal/api/artworks"
	authapi "gallery-app/internal/api/auth"
	cartapi "gallery-app/internal/api/cart"
	"gallery-app/internal/api/checkout"
	siteapi "gallery-app/internal/api/site"
	stripewebhooks "gallery-app/internal/api/stripewebhook"
	"gallery-app/internal/api/users"
	"gallery-app/internal/app/http/middleware"
	"gallery-app/internal/infra/notify"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, hub *notify.Hub) {
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/ws/catalog", hub.ServeWS)

	// Public catalog
	r.GET("/artworks", artworks.ListArtworks)
	r.GET("/artworks/featured", artworks.ListFeaturedArtworks)
	r.GET("/artworks/:id", artworks.GetArtworkByID)
	r.GET("/categories", artworks.ListCategories)
	r.GET("/site/settings", siteapi.GetPublicSettings)

	// Public auth surface, sanitized
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/verify", users.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Visitor session state (works for anonymous visitors too)
	state := r.Group("/")
	state.Use(middleware.SessionID())

	state.GET("/cart", cartapi.GetCart)
	state.POST("/cart/items", cartapi.AddCartItem)
	state.PUT("/cart/items/:id", cartapi.UpdateCartItem)
	state.DELETE("/cart/items/:id", cartapi.RemoveCartItem)

	state.GET("/favorites", cartapi.GetFavorites)
	state.POST("/favorites/:id", cartapi.AddFavorite)
	state.DELETE("/favorites/:id", cartapi.RemoveFavorite)

	state.GET("/preferences", cartapi.GetPreferences)
	state.POST("/preferences/dark-mode", cartapi.ToggleDarkMode)

	state.POST("/api/create-checkout-session", checkout.CreateCheckoutSession)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", users.GetCurrentUser)
	auth.POST("/change-password", authapi.ChangePassword)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/orders", adminapi.ListAllOrders)

	admin.POST("/artworks", adminapi.CreateArtwork)
	admin.PUT("/artworks/:id", adminapi.UpdateArtwork)
	admin.DELETE("/artworks/:id", adminapi.DeleteArtwork)

	admin.POST("/categories", adminapi.CreateCategory)
	admin.PUT("/categories/:id", adminapi.UpdateCategory)
	admin.DELETE("/categories/:id", adminapi.DeleteCategory)

	admin.GET("/settings", adminapi.GetSettings)
	admin.PUT("/settings", adminapi.UpdateSettings)

	admin.POST("/uploads", adminapi.UploadImage)
}
