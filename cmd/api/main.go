package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jelajahbudaya/budaya_api/internal/cache"
	"github.com/jelajahbudaya/budaya_api/internal/config"
	"github.com/jelajahbudaya/budaya_api/internal/database"
	"github.com/jelajahbudaya/budaya_api/internal/handler"
	"github.com/jelajahbudaya/budaya_api/internal/middleware"
	"github.com/jelajahbudaya/budaya_api/internal/models"
	"github.com/jelajahbudaya/budaya_api/internal/repository"
	"github.com/jelajahbudaya/budaya_api/internal/service"
	"github.com/jelajahbudaya/budaya_api/internal/storage"
)

// main is the application entrypoint for the Jelajah Budaya API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting jelajah budaya api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	ratingCache := cache.NewRatingCache(redisClient)

	// 4. Initialize media stores
	imageStore, err := storage.NewCloudinaryStore(&cfg.Cloudinary)
	if err != nil {
		log.Error().Err(err).Msg("cloudinary initialization failed")
		fmt.Fprintf(os.Stderr, "cloudinary initialization failed: %v\n", err)
		os.Exit(1)
	}

	docStore, err := storage.NewS3Store(context.Background(), &cfg.S3)
	if err != nil {
		log.Error().Err(err).Msg("s3 initialization failed")
		fmt.Fprintf(os.Stderr, "s3 initialization failed: %v\n", err)
		os.Exit(1)
	}

	// 5. Initialize repositories
	userRepo := repository.NewUserRepository(db)
	provinsiRepo := repository.NewProvinsiRepository(db)
	daerahRepo := repository.NewDaerahRepository(db)
	budayaRepo := repository.NewBudayaRepository(db)
	eventRepo := repository.NewEventRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	requestRepo := repository.NewRequestRepository(db)

	// 6. Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	userSvc := service.NewUserService(userRepo, requestRepo, docStore)
	provinsiSvc := service.NewProvinsiService(provinsiRepo, imageStore)
	daerahSvc := service.NewDaerahService(daerahRepo, imageStore)
	budayaSvc := service.NewBudayaService(budayaRepo, imageStore)
	eventSvc := service.NewEventService(eventRepo, imageStore)
	ratingSvc := service.NewRatingService(ratingRepo, ratingCache)
	requestSvc := service.NewRequestService(requestRepo)

	// 7. Initialize handlers
	handlers := &Handlers{
		Health:   handler.NewHealthHandler(db),
		User:     handler.NewUserHandler(authSvc, userSvc),
		Provinsi: handler.NewProvinsiHandler(provinsiSvc),
		Daerah:   handler.NewDaerahHandler(daerahSvc),
		Budaya:   handler.NewBudayaHandler(budayaSvc),
		Event:    handler.NewEventHandler(eventSvc),
		Rating:   handler.NewRatingHandler(ratingSvc),
		Request:  handler.NewRequestHandler(requestSvc),
	}

	// 8. Initialize middleware
	authMw := middleware.NewAuthMiddleware(userRepo, cfg.JWTSecret)

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, authMw)

	// 10. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 11. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 12. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health   *handler.HealthHandler
	User     *handler.UserHandler
	Provinsi *handler.ProvinsiHandler
	Daerah   *handler.DaerahHandler
	Budaya   *handler.BudayaHandler
	Event    *handler.EventHandler
	Rating   *handler.RatingHandler
	Request  *handler.RequestHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, authMw *middleware.AuthMiddleware) {
	router.GET("/health", handlers.Health.Health)

	// Account routes
	users := router.Group("/users")
	{
		users.POST("/login", handlers.User.Login)
		users.POST("/register", handlers.User.Register)
		users.POST("/register-admin", handlers.User.RegisterAdmin)

		users.POST("/admin", authMw.Handle(), middleware.RequireRoles(models.RoleSuperAdmin), handlers.User.CreateAdmin)
		users.GET("", authMw.Handle(), middleware.RequireRoles(models.RoleSuperAdmin), handlers.User.List)
		users.GET("/regular", authMw.Handle(), middleware.RequireRoles(models.RoleSuperAdmin, models.RoleAdminDaerah), handlers.User.ListRegular)
		users.GET("/:id", authMw.Handle(), handlers.User.Get)
		users.PUT("/:id", authMw.Handle(), handlers.User.Update)
		users.DELETE("/:id", authMw.Handle(), middleware.RequireRoles(models.RoleSuperAdmin), handlers.User.Delete)
	}

	// Catalog routes: reads are public, writes are role-gated
	superOnly := []gin.HandlerFunc{authMw.Handle(), middleware.RequireRoles(models.RoleSuperAdmin)}
	adminOnly := []gin.HandlerFunc{authMw.Handle(), middleware.RequireRoles(models.RoleSuperAdmin, models.RoleAdminDaerah)}

	provinsi := router.Group("/provinsi")
	{
		provinsi.GET("", handlers.Provinsi.List)
		provinsi.GET("/:id", handlers.Provinsi.Get)
		provinsi.POST("", append(superOnly, handlers.Provinsi.Create)...)
		provinsi.PUT("/:id", append(superOnly, handlers.Provinsi.Update)...)
		provinsi.DELETE("/:id", append(superOnly, handlers.Provinsi.Delete)...)
	}

	daerah := router.Group("/daerah")
	{
		daerah.GET("", handlers.Daerah.List)
		daerah.GET("/:id", handlers.Daerah.Get)
		daerah.POST("", append(adminOnly, handlers.Daerah.Create)...)
		daerah.PUT("/:id", append(adminOnly, handlers.Daerah.Update)...)
		daerah.DELETE("/:id", append(adminOnly, handlers.Daerah.Delete)...)
	}

	budaya := router.Group("/budaya")
	{
		budaya.GET("", handlers.Budaya.List)
		budaya.GET("/:id", handlers.Budaya.Get)
		budaya.POST("", append(adminOnly, handlers.Budaya.Create)...)
		budaya.PUT("/:id", append(adminOnly, handlers.Budaya.Update)...)
		budaya.DELETE("/:id", append(adminOnly, handlers.Budaya.Delete)...)
	}

	events := router.Group("/events")
	{
		events.GET("", handlers.Event.List)
		events.GET("/:id", handlers.Event.Get)
		events.POST("", append(adminOnly, handlers.Event.Create)...)
		events.PUT("/:id", append(adminOnly, handlers.Event.Update)...)
		events.DELETE("/:id", append(adminOnly, handlers.Event.Delete)...)
	}

	// Participation and rating routes
	ratings := router.Group("/event-ratings")
	{
		ratings.GET("", handlers.Rating.List)
		ratings.GET("/:id", handlers.Rating.Get)
		ratings.GET("/event/:eventId", handlers.Rating.ListByEvent)
		ratings.GET("/event/:eventId/average", handlers.Rating.Average)

		ratings.GET("/user/:userId", authMw.Handle(), handlers.Rating.ListByUser)
		ratings.POST("/join", authMw.Handle(), handlers.Rating.Join)
		ratings.PUT("/:id/rate", authMw.Handle(), handlers.Rating.Rate)
		ratings.DELETE("/:id", authMw.Handle(), handlers.Rating.Cancel)
	}

	// Admin-daerah request moderation
	requests := router.Group("/requests")
	requests.Use(authMw.Handle(), middleware.RequireRoles(models.RoleSuperAdmin))
	{
		requests.GET("", handlers.Request.List)
		requests.GET("/counts", handlers.Request.Counts)
		requests.GET("/:id", handlers.Request.Get)
		requests.PUT("/:id", handlers.Request.Moderate)
		requests.DELETE("/:id", handlers.Request.Delete)
	}
}

func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
