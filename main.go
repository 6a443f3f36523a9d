package main

import (
	"log"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	api "postbase-backend/cmd/api"
	authdomain "postbase-backend/internal/auth/domain"
	authRepo "postbase-backend/internal/auth/repository"
	authUsecase "postbase-backend/internal/auth/usecase"
	postdomain "postbase-backend/internal/post/domain"
	postRepo "postbase-backend/internal/post/repository"
	postUsecase "postbase-backend/internal/post/usecase"
	userUsecase "postbase-backend/internal/user/usecase"
	"postbase-backend/pkg/config"
	"postbase-backend/pkg/database"
	"postbase-backend/pkg/token"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Connect to the data store when configured. Without it the API still
	// serves, in a degraded mode where identity comes from token claims and
	// data-backed operations fail.
	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = database.NewPostgresConnection(cfg)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		if err := db.AutoMigrate(&authdomain.User{}, &postdomain.Post{}); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
	} else {
		logger.Warn("DATABASE_URL not set; running without a data store")
	}

	// Initialize repositories (dependency injection)
	var userRepository authRepo.UserRepository
	var postRepository postRepo.PostRepository
	if db != nil {
		userRepository = authRepo.NewUserRepository(db)
		postRepository = postRepo.NewPostRepository(db)
	}

	tokens := token.NewService(cfg.JWTSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, tokens, cfg)
	userUsecaseInstance := userUsecase.NewUserUsecase(userRepository)
	postUsecaseInstance := postUsecase.NewPostUsecase(postRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, userUsecaseInstance, postUsecaseInstance, userRepository, tokens, cfg, logger)

	logger.WithField("port", cfg.Port).Info("server starting")
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
