package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"keiyaku/internal/campaign"
	"keiyaku/internal/catalog"
	"keiyaku/internal/middleware"
	"keiyaku/internal/session"
	"keiyaku/internal/signup"
)

// NewRouter wires every handler into a gin engine. Kept apart from
// main so handler tests can stand up the real route table.
func NewRouter(
	catalogHandler *catalog.Handler,
	sessionHandler *session.Handler,
	signupHandler *signup.Handler,
	campaignHandler *campaign.Handler,
) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── PUBLIC ─────────────────────────
	r.GET("/catalog", catalogHandler.Get)
	r.GET("/campaigns", campaignHandler.List)
	r.POST("/sessions", sessionHandler.Create)

	// ───────────────────────── SESSION-SCOPED ─────────────────────────
	authed := r.Group("/")
	authed.Use(middleware.SessionMiddleware())
	{
		authed.GET("/sessions/me", sessionHandler.Get)
		authed.PUT("/sessions/current-path", sessionHandler.SetCurrentPath)

		authed.GET("/product-selection", signupHandler.GetStep)
		authed.PATCH("/product-selection", signupHandler.ApplyEvent)
		authed.POST("/product-selection/submit", signupHandler.Submit)
	}

	return r
}
