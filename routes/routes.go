package routes

import (
	"net/http"
	"time"

	"smartmeet/handlers"
	"smartmeet/middleware"
	"smartmeet/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAssistantRoutes sets up the scheduling conversation endpoints.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/message", hb.ProcessMessage)
		api.POST("/session/:sessionID/confirm", hb.ConfirmParticipant)
		api.POST("/session/:sessionID/external", hb.AddExternalParticipant)
		api.POST("/session/:sessionID/slot", hb.SelectSlot)
		api.POST("/session/:sessionID/schedule", hb.ScheduleMeeting)
		api.POST("/session/:sessionID/change-time", hb.RequestTimeChange)
		api.DELETE("/session/:sessionID", hb.CancelSession)
	}
}

// RegisterDirectoryRoutes sets up read-only directory browsing.
func RegisterDirectoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/directory")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/participants", hb.ListParticipants)
		api.GET("/search", hb.SearchParticipants)
	}
}

// RegisterMeetingRoutes sets up calendar-view queries over the store.
func RegisterMeetingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/meetings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/id/:id", hb.GetMeetingByID)
		api.GET("", hb.ListMeetings)
	}
}

// RegisterAuthRoutes sets up token issuance.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/token", hb.IssueToken)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm SmartMeet",
			"deps":    utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-API-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
	RegisterDirectoryRoutes(r, hb)
	RegisterMeetingRoutes(r, hb)
}
