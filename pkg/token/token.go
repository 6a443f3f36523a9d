package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken        = errors.New("invalid token")
	ErrExpiredToken        = errors.New("token expired")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

const kindRefresh = "refresh"

// Claims is the verified claim set embedded in an issued token.
type Claims struct {
	UserID string
	Email  string
	Kind   string
}

// IsRefresh reports whether the token was issued as a refresh token.
func (c Claims) IsRefresh() bool {
	return c.Kind == kindRefresh
}

// Pair is an access/refresh token pair.
type Pair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Service issues and verifies HS256-signed tokens. Tokens are not persisted;
// the signature is the only proof of issuance.
type Service struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewService(secret string, accessExpiry, refreshExpiry time.Duration) *Service {
	return &Service{
		secret:        []byte(secret),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// IssuePair signs a fresh access/refresh pair for the given subject.
func (s *Service) IssuePair(userID, email string) (Pair, error) {
	now := time.Now()

	accessToken, err := s.sign(jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"iat":     now.Unix(),
		"exp":     now.Add(s.accessExpiry).Unix(),
	})
	if err != nil {
		return Pair{}, err
	}

	refreshToken, err := s.sign(jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"kind":    kindRefresh,
		"iat":     now.Unix(),
		"exp":     now.Add(s.refreshExpiry).Unix(),
	})
	if err != nil {
		return Pair{}, err
	}

	return Pair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Verify checks signature and expiry. Expired tokens are reported separately
// from malformed or tampered ones.
func (s *Service) Verify(tokenString string) (Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpiredToken
		}
		return Claims{}, ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}

	userID, _ := mapClaims["user_id"].(string)
	if userID == "" {
		return Claims{}, ErrInvalidToken
	}
	email, _ := mapClaims["email"].(string)
	kind, _ := mapClaims["kind"].(string)

	return Claims{UserID: userID, Email: email, Kind: kind}, nil
}

// Refresh verifies a refresh token and issues a new pair from its embedded
// claims. The subject is not re-checked against current user state; a deleted
// or demoted account keeps refreshing until the refresh token expires.
func (s *Service) Refresh(refreshToken string) (Pair, error) {
	claims, err := s.Verify(refreshToken)
	if err != nil {
		if errors.Is(err, ErrExpiredToken) {
			return Pair{}, ErrExpiredToken
		}
		return Pair{}, ErrInvalidRefreshToken
	}

	if !claims.IsRefresh() {
		return Pair{}, ErrInvalidRefreshToken
	}

	return s.IssuePair(claims.UserID, claims.Email)
}

func (s *Service) sign(claims jwt.MapClaims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
