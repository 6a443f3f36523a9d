package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authdelivery "postbase-backend/internal/auth/delivery"
	postdelivery "postbase-backend/internal/post/delivery"
	userdelivery "postbase-backend/internal/user/delivery"
	"postbase-backend/pkg/response"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	authHandler := authdelivery.NewAuthHandler(h.authUsecase)
	userHandler := userdelivery.NewUserHandler(h.userUsecase)
	postHandler := postdelivery.NewPostHandler(h.postUsecase)

	authenticate := authdelivery.Authenticate(h.tokens, h.userRepo)

	// Endpoint directory
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Backend API v1.0.0",
			"endpoints": gin.H{
				"auth":   "/api/auth",
				"users":  "/api/users",
				"posts":  "/api/posts",
				"health": "/health",
			},
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		authHandler.RegisterRoutes(api.Group("/auth"))
		userHandler.RegisterRoutes(api.Group("/users"), authenticate)
		postHandler.RegisterRoutes(api.Group("/posts"), authenticate)
	}

	r.NoRoute(response.NotFoundHandler())
}
