package usecase

import (
	authdto "postbase-backend/internal/auth/dto"
	"postbase-backend/pkg/token"
)

// AuthUsecase defines the authentication business logic.
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdto.AuthResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.AuthResponse, error)
	Refresh(refreshToken string) (token.Pair, error)
}
