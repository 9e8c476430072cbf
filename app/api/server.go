package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"newslens/app/cfg"
)

const sessionUserKey = "user_id"

// NewServer creates a new HTTP server with all routes configured
func NewServer(handler *Handler, sessionSecret string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Middleware
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	// CORS middleware for the dashboard SPA
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("newslens_session", store))

	setupRoutes(r, handler)

	return r
}

// setupRoutes configures all the application routes
func setupRoutes(r *gin.Engine, handler *Handler) {
	// Account endpoints
	r.POST("/auth/register", handler.Register)
	r.POST("/auth/login", handler.Login)
	r.POST("/auth/logout", handler.Logout)

	// Dashboard API, session required
	api := r.Group("/api")
	api.Use(authRequired())
	{
		api.GET("/analyze", handler.AnalyzeTopic)
		api.GET("/latest", handler.LatestNews)
		api.GET("/topics", handler.ListTopics)
		api.GET("/profile", handler.GetProfile)
		api.PUT("/profile", handler.UpdateProfile)
	}

	// Health and status endpoints
	r.GET("/health", handler.GetHealth)

	// Root endpoint with basic information
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service":     "NewsLens",
			"version":     cfg.GetVersion(),
			"description": "Keyword news analysis with sentiment and named-entity annotations",
			"endpoints": map[string]string{
				"analyze":  "/api/analyze?keyword=<term> (session required)",
				"latest":   "/api/latest (session required)",
				"topics":   "/api/topics (session required)",
				"profile":  "/api/profile (session required)",
				"register": "/auth/register (POST)",
				"login":    "/auth/login (POST)",
				"health":   "/health",
			},
		})
	})

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}

// authRequired rejects requests that do not carry a logged-in session.
func authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		userID := session.Get(sessionUserKey)
		if userID == nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
			})
			c.Abort()
			return
		}

		c.Set(sessionUserKey, userID)
		c.Next()
	}
}
