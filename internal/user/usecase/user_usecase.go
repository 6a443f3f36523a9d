package usecase

import (
	authdomain "postbase-backend/internal/auth/domain"
	"postbase-backend/internal/auth/repository"
	userdto "postbase-backend/internal/user/dto"
	"postbase-backend/pkg/apperror"
	"postbase-backend/pkg/paging"
)

// userUsecase implements UserUsecase.
type userUsecase struct {
	users repository.UserRepository
}

func NewUserUsecase(users repository.UserRepository) UserUsecase {
	return &userUsecase{
		users: users,
	}
}

func (u *userUsecase) GetByID(id string) (*authdomain.User, error) {
	if u.users == nil {
		return nil, apperror.ErrDatabaseNotConfigured
	}

	user, err := u.users.FindByID(id)
	if err != nil {
		return nil, apperror.Internal("Failed to fetch user", err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (u *userUsecase) UpdateProfile(id string, req *userdto.UpdateProfileRequest) (*authdomain.User, error) {
	user, err := u.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Email != "" && req.Email != user.Email {
		existing, err := u.users.FindByEmail(req.Email)
		if err != nil {
			return nil, apperror.Internal("Failed to update user", err)
		}
		if existing != nil {
			return nil, apperror.Conflict("User with this email already exists")
		}
		user.Email = req.Email
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}

	if err := u.users.Update(user); err != nil {
		return nil, apperror.Internal("Failed to update user", err)
	}
	return user, nil
}

func (u *userUsecase) List(opts repository.ListOptions) ([]authdomain.User, paging.Result, error) {
	if u.users == nil {
		return nil, paging.Result{}, apperror.ErrDatabaseNotConfigured
	}

	users, total, err := u.users.List(opts)
	if err != nil {
		return nil, paging.Result{}, apperror.Internal("Failed to fetch users", err)
	}
	return users, paging.NewResult(opts.Paging, total), nil
}

func (u *userUsecase) Delete(id string) error {
	if _, err := u.GetByID(id); err != nil {
		return err
	}

	if err := u.users.Delete(id); err != nil {
		return apperror.Internal("Failed to delete user", err)
	}
	return nil
}
