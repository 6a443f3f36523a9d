package usecase

import (
	postdomain "postbase-backend/internal/post/domain"
	postdto "postbase-backend/internal/post/dto"
	"postbase-backend/internal/post/repository"
	"postbase-backend/pkg/paging"
)

// PostUsecase defines the post business logic.
type PostUsecase interface {
	List(opts repository.ListOptions) ([]postdomain.Post, paging.Result, error)
	GetByID(id string) (*postdomain.Post, error)
	Create(authorID string, req *postdto.CreatePostRequest) (*postdomain.Post, error)
	Update(id, callerID string, req *postdto.UpdatePostRequest) (*postdomain.Post, error)
	Delete(id, callerID string) error
}
