package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/lessonforge/lessonforge/pkg/validator"

	"github.com/lessonforge/lessonforge/internal/adapter/handler"
	"github.com/lessonforge/lessonforge/internal/adapter/repository"
	"github.com/lessonforge/lessonforge/internal/infrastructure/cache"
	"github.com/lessonforge/lessonforge/internal/infrastructure/database"
	"github.com/lessonforge/lessonforge/internal/infrastructure/storage"
	"github.com/lessonforge/lessonforge/internal/usecase/audiocache"
	"github.com/lessonforge/lessonforge/internal/usecase/lesson"
	pkgai "github.com/lessonforge/lessonforge/pkg/ai"
	"github.com/lessonforge/lessonforge/pkg/config"
	"github.com/lessonforge/lessonforge/pkg/jwt"
	"github.com/lessonforge/lessonforge/pkg/tts"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run AutoMigrate only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Running schema migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize Redis
	log.Println("📦 Connecting to Redis...")
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize MinIO for generated lesson audio
	log.Println("📦 Connecting to object storage...")
	minioClient, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to connect to object storage: %v", err)
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	lessonRepo := repository.NewLessonRepository(db)
	jobRepo := repository.NewLessonJobRepository(db)

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize generation providers
	log.Println("🤖 Initializing generation providers...")
	dialogueClient := pkgai.NewOpenAIClient(&cfg.OpenAI)

	var synth tts.Synthesizer
	switch cfg.Lesson.TTSProvider {
	case "elevenlabs":
		synth = tts.NewElevenLabsClient(&cfg.ElevenLabs)
	default:
		synth = tts.NewOpenAIClient(&cfg.OpenAI)
	}
	log.Printf("🎙️  TTS provider: %s", synth.Provider())

	if cfg.Lesson.Mode != "production" {
		log.Printf("⚠️  Lesson generation running in %s mode (no AI provider calls)", cfg.Lesson.Mode)
	}

	// Initialize lesson service and its background workers
	log.Println("👷 Initializing lesson service...")
	bundled := lesson.NewBundledRegistry()
	lessonService := lesson.NewLessonService(lessonRepo, jobRepo, dialogueClient, synth, minioClient, bundled, cfg, logger)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	lessonService.StartWorkerPool(workerCtx, cfg.Lesson.WorkerCount)

	// Initialize section audio cache (memory -> Redis -> MinIO)
	log.Println("🔊 Initializing section audio cache...")
	audioCache := audiocache.NewService(
		cache.NewMemoryStore(),
		cache.NewRedisStore(redisClient),
		minioClient,
		synth,
		cfg.Lesson.AudioCache,
		logger,
	)

	// Initialize JWT manager for device sessions
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiry)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	authHandler := handler.NewAuthHandler(jwtManager, logger)
	catalogHandler := handler.NewCatalogHandler(logger)
	lessonHandler := handler.NewLessonHandler(lessonService, logger)
	playbackHandler := handler.NewPlaybackHandler(lessonService, logger)
	audioHandler := handler.NewAudioHandler(audioCache, minioClient, logger)
	log.Println("✅ Handlers initialized successfully")

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, jwtManager, authHandler, catalogHandler, lessonHandler, playbackHandler, audioHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	stopWorkers()
	lessonService.StopWorkerPool()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
