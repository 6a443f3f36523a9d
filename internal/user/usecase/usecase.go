package usecase

import (
	authdomain "postbase-backend/internal/auth/domain"
	"postbase-backend/internal/auth/repository"
	userdto "postbase-backend/internal/user/dto"
	"postbase-backend/pkg/paging"
)

// UserUsecase defines the user management business logic.
type UserUsecase interface {
	GetByID(id string) (*authdomain.User, error)
	UpdateProfile(id string, req *userdto.UpdateProfileRequest) (*authdomain.User, error)
	List(opts repository.ListOptions) ([]authdomain.User, paging.Result, error)
	Delete(id string) error
}
