package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lessonforge/lessonforge/internal/infrastructure/http/middleware"
	"github.com/lessonforge/lessonforge/pkg/config"
	"github.com/lessonforge/lessonforge/pkg/jwt"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	jwtManager      *jwt.Manager
	authHandler     *Auth
	catalogHandler  *Catalog
	lessonHandler   *Lesson
	playbackHandler *Playback
	audioHandler    *Audio
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, jwtManager *jwt.Manager, authHandler *Auth, catalogHandler *Catalog, lessonHandler *Lesson, playbackHandler *Playback, audioHandler *Audio) *Router {
	return &Router{
		cfg:             cfg,
		jwtManager:      jwtManager,
		authHandler:     authHandler,
		catalogHandler:  catalogHandler,
		lessonHandler:   lessonHandler,
		playbackHandler: playbackHandler,
		audioHandler:    audioHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAuthRoutes(v1)
	rt.setupCatalogRoutes(v1)

	// Everything below requires a device session
	protected := v1.Group("", middleware.DeviceAuth(rt.jwtManager))
	rt.setupLessonRoutes(protected)
	rt.setupAudioRoutes(protected)
}

func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")

	if rt.authHandler != nil {
		authGroup.POST("/device", rt.authHandler.RegisterDevice)
	} else {
		authGroup.POST("/device", rt.notImplemented)
	}
}

func (rt *Router) setupCatalogRoutes(g *echo.Group) {
	catalogGroup := g.Group("/catalog")

	if rt.catalogHandler == nil {
		catalogGroup.GET("/languages", rt.notImplemented)
		return
	}

	catalogGroup.GET("/languages", rt.catalogHandler.Languages)
	catalogGroup.GET("/locations", rt.catalogHandler.Locations)
	catalogGroup.GET("/locations/:location/situations", rt.catalogHandler.Situations)
	catalogGroup.GET("/locations/:location/characters", rt.catalogHandler.Characters)
	catalogGroup.GET("/difficulties", rt.catalogHandler.Difficulties)
	catalogGroup.GET("/formats", rt.catalogHandler.Formats)
	catalogGroup.GET("/segments", rt.catalogHandler.Segments)
	catalogGroup.GET("/quiz-card-types", rt.catalogHandler.QuizCardTypes)
}

func (rt *Router) setupLessonRoutes(g *echo.Group) {
	lessonGroup := g.Group("/lessons")

	if rt.lessonHandler != nil {
		lessonGroup.POST("", rt.lessonHandler.Create)
		lessonGroup.POST("/instant", rt.lessonHandler.CreateInstant)
		lessonGroup.GET("", rt.lessonHandler.List)
		lessonGroup.GET("/jobs/latest", rt.lessonHandler.GetLatestJob)
		lessonGroup.GET("/jobs/:id", rt.lessonHandler.GetJob)
		lessonGroup.POST("/jobs/:id/cancel", rt.lessonHandler.CancelJob)
		lessonGroup.GET("/:id", rt.lessonHandler.Get)
		lessonGroup.DELETE("/:id", rt.lessonHandler.Delete)
	}

	if rt.playbackHandler != nil {
		lessonGroup.GET("/:id/segments", rt.playbackHandler.Segments)
		lessonGroup.GET("/:id/cards", rt.playbackHandler.Cards)
		lessonGroup.POST("/:id/sync", rt.playbackHandler.Sync)
	}
}

func (rt *Router) setupAudioRoutes(g *echo.Group) {
	audioGroup := g.Group("/audio")

	if rt.audioHandler == nil {
		audioGroup.POST("/section", rt.notImplemented)
		return
	}

	audioGroup.POST("/section", rt.audioHandler.GetSection)
	audioGroup.POST("/section/lookup", rt.audioHandler.LookupSection)
	audioGroup.GET("/files", rt.audioHandler.ListFiles)
	audioGroup.GET("/storage", rt.audioHandler.StorageInfo)
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Please initialize the required handler in main.go",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	env := "production"
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": env,
	})
}
