package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-talent-directory/config"
	_ "go-talent-directory/docs" // Important for Swagger
	v1 "go-talent-directory/internal/delivery/http/v1"
	"go-talent-directory/internal/repository/postgres"
	"go-talent-directory/internal/usecase"
	"go-talent-directory/pkg/auth"
	"go-talent-directory/pkg/database"
	"go-talent-directory/pkg/logger"
	"go-talent-directory/pkg/redis"
	"go-talent-directory/pkg/storage"
	"go-talent-directory/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Student Talent Directory API
// @version         1.0
// @description     Backend for the student talent directory using Clean Architecture.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting talent directory backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting + statistics cache, optional)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory fallbacks", "error", err)
	}
	defer redis.Close()

	// 5. Setup Photo Storage
	var photos storage.PhotoStore
	if cfg.StorageBackend == "s3" {
		s3Store, err := storage.NewS3Store(context.Background(), storage.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.S3AccessKey,
			SecretAccessKey: cfg.S3SecretKey,
			Endpoint:        cfg.S3Endpoint,
		})
		if err != nil {
			logger.Log.Error("Failed to configure S3 storage", "error", err)
			os.Exit(1)
		}
		if err := s3Store.Ping(context.Background()); err != nil {
			logger.Log.Error("S3 bucket unreachable", "error", err)
			os.Exit(1)
		}
		photos = s3Store
	} else {
		localStore, err := storage.NewLocalStore(cfg.MediaDir)
		if err != nil {
			logger.Log.Error("Failed to create media directory", "error", err)
			os.Exit(1)
		}
		photos = localStore
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	talentRepo := postgres.NewTalentRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	experienceRepo := postgres.NewExperienceRepository(dbPool)
	projectRepo := postgres.NewProjectRepository(dbPool)
	socialLinkRepo := postgres.NewSocialLinkRepository(dbPool)
	statsRepo := postgres.NewStatisticsRepository(dbPool)

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	authUC := usecase.NewAuthUsecase(userRepo, tokens, validate)
	talentUC := usecase.NewTalentUsecase(talentRepo, statsRepo, photos, redis.Client(), validate, cfg.MaxPhotoBytes, cfg.StatsCacheTTL)
	skillUC := usecase.NewSkillUsecase(talentRepo, skillRepo, validate)
	experienceUC := usecase.NewExperienceUsecase(talentRepo, experienceRepo, validate)
	projectUC := usecase.NewProjectUsecase(talentRepo, projectRepo, validate)
	socialLinkUC := usecase.NewSocialLinkUsecase(talentRepo, socialLinkRepo, validate)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:       authUC,
		TalentUC:     talentUC,
		SkillUC:      skillUC,
		ExperienceUC: experienceUC,
		ProjectUC:    projectUC,
		SocialLinkUC: socialLinkUC,
		Tokens:       tokens,
		Config:       cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
