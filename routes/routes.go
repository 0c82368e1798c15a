package routes

import (
	"net/http"
	"time"

	"ard/handlers"
	"ard/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterFeedRoutes registers the discovery feed and carousel session endpoints.
func RegisterFeedRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/feed")
	{
		api.Use(middleware.ViewerLocationMiddleware())
		api.GET("", hb.Feed.GetFeed)
		api.GET("/session/:id/slots", hb.Feed.GetSlots)
		api.GET("/session/:id/slots/:slot", hb.Feed.GetCurrent)
		api.PUT("/session/:id/slots/:slot/pause", hb.Feed.PauseSlot)
		api.PUT("/session/:id/slots/:slot/resume", hb.Feed.ResumeSlot)
		api.DELETE("/session/:id", hb.Feed.DropSession)
	}
}

// RegisterAdRoutes registers the ad lifecycle endpoints.
func RegisterAdRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ads")
	{
		api.POST("", hb.Ads.CreateAdHandler)
		api.GET("/:id", hb.Ads.GetAdHandler)
		api.PUT("/:id", hb.Ads.UpdateAdHandler)
		api.DELETE("/:id", hb.Ads.DeleteAdHandler)
		api.POST("/:id/renew", hb.Ads.RenewAdHandler)
		api.POST("/:id/report", hb.Ads.ReportAdHandler)
		api.POST("/:id/reviews", hb.Ads.AddReviewHandler)
		api.POST("/:id/insights/:kind", hb.Ads.RecordInsightHandler)
	}
	// Separate group: gin does not allow a static "user" segment next to the
	// ":id" wildcard above.
	r.GET("/api/users/:userId/ads", hb.Ads.MyAdsHandler)
}

// RegisterSearchRoutes registers the AI search endpoint.
func RegisterSearchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/search")
	{
		api.POST("", hb.Search.SearchAdsHandler)
	}
}

// RegisterAdminRoutes registers the moderation endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.GET("/ads/pending", hb.Admin.PendingAdsHandler)
		api.GET("/ads/reported", hb.Admin.ReportedAdsHandler)
		api.PUT("/ads/:id/approve", hb.Admin.ApproveAdHandler)
		api.PUT("/ads/:id/dismiss-reports", hb.Admin.DismissReportsHandler)
	}
}

// RegisterInsightsRoutes registers the seller insights endpoint.
func RegisterInsightsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/insights")
	{
		api.GET("/:userId", hb.Insights.UserInsightsHandler)
	}
}

// RegisterStorageRoutes registers the image upload endpoint.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.POST("/upload", hb.Storage.UploadImageHandler)
		api.DELETE("/images/*publicId", hb.Storage.DeleteImageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Ard"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterFeedRoutes(r, hb)
	RegisterAdRoutes(r, hb)
	RegisterSearchRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterInsightsRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
