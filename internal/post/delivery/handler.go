package delivery

import (
	"github.com/gin-gonic/gin"

	authdelivery "postbase-backend/internal/auth/delivery"
	postdto "postbase-backend/internal/post/dto"
	"postbase-backend/internal/post/repository"
	"postbase-backend/internal/post/usecase"
	"postbase-backend/pkg/paging"
	"postbase-backend/pkg/response"
	"postbase-backend/pkg/validation"
)

// PostHandler handles post HTTP requests.
type PostHandler struct {
	postUsecase usecase.PostUsecase
}

func NewPostHandler(postUsecase usecase.PostUsecase) *PostHandler {
	return &PostHandler{
		postUsecase: postUsecase,
	}
}

// RegisterRoutes mounts the post endpoints on the given group. Reads are
// public; writes require authentication.
func (h *PostHandler) RegisterRoutes(rg *gin.RouterGroup, authenticate gin.HandlerFunc) {
	rg.GET("", validation.Query(listPostsSchema), h.List)
	rg.GET("/:id", validation.Params(postIDSchema), h.GetByID)
	rg.POST("", authenticate, validation.Body(createPostSchema), h.Create)
	rg.PUT("/:id", authenticate, validation.Params(postIDSchema), validation.Body(updatePostSchema), h.Update)
	rg.DELETE("/:id", authenticate, validation.Params(postIDSchema), h.Delete)
}

// List handles GET /api/posts.
func (h *PostHandler) List(c *gin.Context) {
	query := validation.QueryMap(c)
	search, _ := query["search"].(string)
	category, _ := query["category"].(string)
	opts := repository.ListOptions{
		Paging: paging.Params{
			Page:  query["page"].(int),
			Limit: query["limit"].(int),
		},
		Search:   search,
		Category: category,
	}

	posts, pagination, err := h.postUsecase.List(opts)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OKWithMeta(c, "Posts retrieved successfully", posts, gin.H{"pagination": pagination})
}

// GetByID handles GET /api/posts/:id.
func (h *PostHandler) GetByID(c *gin.Context) {
	id := validation.ParamsMap(c)["id"].(string)

	post, err := h.postUsecase.GetByID(id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, "Post retrieved successfully", post)
}

// Create handles POST /api/posts.
func (h *PostHandler) Create(c *gin.Context) {
	caller := authdelivery.CurrentUser(c)

	var req postdto.CreatePostRequest
	if err := validation.DecodeBody(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	post, err := h.postUsecase.Create(caller.ID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Created(c, "Post created successfully", post)
}

// Update handles PUT /api/posts/:id.
func (h *PostHandler) Update(c *gin.Context) {
	caller := authdelivery.CurrentUser(c)
	id := validation.ParamsMap(c)["id"].(string)

	var req postdto.UpdatePostRequest
	if err := validation.DecodeBody(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	post, err := h.postUsecase.Update(id, caller.ID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, "Post updated successfully", post)
}

// Delete handles DELETE /api/posts/:id.
func (h *PostHandler) Delete(c *gin.Context) {
	caller := authdelivery.CurrentUser(c)
	id := validation.ParamsMap(c)["id"].(string)

	if err := h.postUsecase.Delete(id, caller.ID); err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, "Post deleted successfully", nil)
}
