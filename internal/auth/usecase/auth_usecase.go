package usecase

import (
	"errors"

	authdomain "postbase-backend/internal/auth/domain"
	authdto "postbase-backend/internal/auth/dto"
	"postbase-backend/internal/auth/repository"
	"postbase-backend/pkg/apperror"
	"postbase-backend/pkg/config"
	"postbase-backend/pkg/token"
)

// authUsecase implements AuthUsecase.
type authUsecase struct {
	users  repository.UserRepository
	tokens *token.Service
	config *config.Config
}

func NewAuthUsecase(users repository.UserRepository, tokens *token.Service, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		users:  users,
		tokens: tokens,
		config: cfg,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.AuthResponse, error) {
	if u.users == nil {
		return nil, apperror.ErrDatabaseNotConfigured
	}

	existing, err := u.users.FindByEmail(req.Email)
	if err != nil {
		return nil, apperror.Internal("Failed to create user", err)
	}
	if existing != nil {
		return nil, apperror.Conflict("User with this email already exists")
	}

	hashed, err := repository.HashPassword(req.Password, u.config.BcryptCost)
	if err != nil {
		return nil, apperror.Internal("Failed to create user", err)
	}

	user := &authdomain.User{
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      authdomain.RoleUser,
	}
	if err := u.users.Create(user); err != nil {
		return nil, apperror.Internal("Failed to create user", err)
	}

	return u.respondWithTokens(user)
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.AuthResponse, error) {
	if u.users == nil {
		return nil, apperror.ErrDatabaseNotConfigured
	}

	// Unknown email and wrong password fail identically so login cannot be
	// used to probe which accounts exist.
	user, err := u.users.FindByEmail(req.Email)
	if err != nil {
		return nil, apperror.Internal("Failed to log in", err)
	}
	if user == nil || !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	return u.respondWithTokens(user)
}

func (u *authUsecase) Refresh(refreshToken string) (token.Pair, error) {
	pair, err := u.tokens.Refresh(refreshToken)
	if err != nil {
		if errors.Is(err, token.ErrExpiredToken) {
			return token.Pair{}, apperror.Unauthorized("Token expired")
		}
		return token.Pair{}, apperror.Unauthorized("Invalid refresh token")
	}
	return pair, nil
}

func (u *authUsecase) respondWithTokens(user *authdomain.User) (*authdto.AuthResponse, error) {
	pair, err := u.tokens.IssuePair(user.ID, user.Email)
	if err != nil {
		return nil, apperror.Internal("Failed to issue tokens", err)
	}
	return &authdto.AuthResponse{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}
