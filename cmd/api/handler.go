package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"postbase-backend/internal/auth/repository"
	authusecase "postbase-backend/internal/auth/usecase"
	postusecase "postbase-backend/internal/post/usecase"
	userusecase "postbase-backend/internal/user/usecase"
	"postbase-backend/pkg/config"
	"postbase-backend/pkg/response"
	"postbase-backend/pkg/token"
)

// Handler wires the HTTP layer together.
type Handler struct {
	authUsecase authusecase.AuthUsecase
	userUsecase userusecase.UserUsecase
	postUsecase postusecase.PostUsecase
	userRepo    repository.UserRepository
	tokens      *token.Service
	config      *config.Config
	logger      *logrus.Logger
}

func NewHandler(
	authUc authusecase.AuthUsecase,
	userUc userusecase.UserUsecase,
	postUc postusecase.PostUsecase,
	userRepo repository.UserRepository,
	tokens *token.Service,
	cfg *config.Config,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		authUsecase: authUc,
		userUsecase: userUc,
		postUsecase: postUc,
		userRepo:    userRepo,
		tokens:      tokens,
		config:      cfg,
		logger:      logger,
	}
}

// Start builds the engine and serves until the listener fails.
func (h *Handler) Start(addr string) error {
	if h.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(h.corsMiddleware())
	r.Use(response.ErrorHandler(h.config, h.logger))

	SetupRoutes(r, h)

	return r.Run(addr)
}

func (h *Handler) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", h.config.CORSOrigin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
