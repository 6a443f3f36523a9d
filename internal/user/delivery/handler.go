package delivery

import (
	"github.com/gin-gonic/gin"

	authdelivery "postbase-backend/internal/auth/delivery"
	authdomain "postbase-backend/internal/auth/domain"
	"postbase-backend/internal/auth/repository"
	userdto "postbase-backend/internal/user/dto"
	"postbase-backend/internal/user/usecase"
	"postbase-backend/pkg/paging"
	"postbase-backend/pkg/response"
	"postbase-backend/pkg/validation"
)

// UserHandler handles user management HTTP requests.
type UserHandler struct {
	userUsecase usecase.UserUsecase
}

func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// RegisterRoutes mounts the user endpoints on the given group. All routes
// require authentication; listing and deletion are admin-only.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, authenticate gin.HandlerFunc) {
	rg.Use(authenticate)
	rg.GET("/profile", h.GetProfile)
	rg.PUT("/profile", validation.Body(updateProfileSchema), h.UpdateProfile)
	rg.GET("", authdelivery.Authorize(authdomain.RoleAdmin), validation.Query(listUsersSchema), h.List)
	rg.GET("/:id", validation.Params(userIDSchema), h.GetByID)
	rg.DELETE("/:id", authdelivery.Authorize(authdomain.RoleAdmin), validation.Params(userIDSchema), h.Delete)
}

// GetProfile handles GET /api/users/profile.
func (h *UserHandler) GetProfile(c *gin.Context) {
	caller := authdelivery.CurrentUser(c)

	user, err := h.userUsecase.GetByID(caller.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, "Profile retrieved successfully", user)
}

// UpdateProfile handles PUT /api/users/profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	caller := authdelivery.CurrentUser(c)

	var req userdto.UpdateProfileRequest
	if err := validation.DecodeBody(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.userUsecase.UpdateProfile(caller.ID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, "Profile updated successfully", user)
}

// List handles GET /api/users.
func (h *UserHandler) List(c *gin.Context) {
	query := validation.QueryMap(c)
	search, _ := query["search"].(string)
	opts := repository.ListOptions{
		Paging: paging.Params{
			Page:  query["page"].(int),
			Limit: query["limit"].(int),
		},
		Search: search,
	}

	users, pagination, err := h.userUsecase.List(opts)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OKWithMeta(c, "Users retrieved successfully", users, gin.H{"pagination": pagination})
}

// GetByID handles GET /api/users/:id.
func (h *UserHandler) GetByID(c *gin.Context) {
	id := validation.ParamsMap(c)["id"].(string)

	user, err := h.userUsecase.GetByID(id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, "User retrieved successfully", user)
}

// Delete handles DELETE /api/users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id := validation.ParamsMap(c)["id"].(string)

	if err := h.userUsecase.Delete(id); err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, "User deleted successfully", nil)
}
