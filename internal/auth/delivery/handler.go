package delivery

import (
	"github.com/gin-gonic/gin"

	authdto "postbase-backend/internal/auth/dto"
	"postbase-backend/internal/auth/usecase"
	"postbase-backend/pkg/response"
	"postbase-backend/pkg/validation"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// RegisterRoutes mounts the auth endpoints on the given group.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", validation.Body(registerSchema), h.Register)
	rg.POST("/login", validation.Body(loginSchema), h.Login)
	rg.POST("/refresh", validation.Body(refreshSchema), h.Refresh)
	rg.POST("/logout", h.Logout)
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := validation.DecodeBody(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	result, err := h.authUsecase.Register(&req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Created(c, "User registered successfully", result)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := validation.DecodeBody(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	result, err := h.authUsecase.Login(&req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, "Login successful", result)
}

// Refresh handles POST /api/auth/refresh.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req authdto.RefreshRequest
	if err := validation.DecodeBody(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	pair, err := h.authUsecase.Refresh(req.RefreshToken)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, "Token refreshed successfully", pair)
}

// Logout handles POST /api/auth/logout. Tokens are stateless; nothing is
// revoked server-side.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.OK(c, "Logout successful", nil)
}
