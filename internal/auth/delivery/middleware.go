package delivery

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	authdomain "postbase-backend/internal/auth/domain"
	"postbase-backend/internal/auth/repository"
	"postbase-backend/pkg/apperror"
	"postbase-backend/pkg/token"
)

const userContextKey = "user"

// Authenticate verifies the bearer token and attaches the caller to the
// request context. With a data store configured, the caller is loaded by the
// token's subject id; without one, identity is rebuilt from token claims
// alone.
func Authenticate(tokens *token.Service, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		bearer, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || bearer == "" {
			abort(c, apperror.Unauthorized("Access token required"))
			return
		}

		claims, err := tokens.Verify(bearer)
		if err != nil {
			if errors.Is(err, token.ErrExpiredToken) {
				abort(c, apperror.Unauthorized("Token expired"))
				return
			}
			abort(c, apperror.Unauthorized("Invalid token"))
			return
		}

		var user *authdomain.User
		if users != nil {
			user, err = users.FindByID(claims.UserID)
			if err != nil {
				abort(c, apperror.Internal("Failed to resolve user", err))
				return
			}
			if user == nil {
				abort(c, apperror.Unauthorized("User not found"))
				return
			}
		} else {
			// Degraded mode without a data store.
			user = &authdomain.User{ID: claims.UserID, Email: claims.Email}
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// Authorize gates a route on the caller's role. An empty allow-list admits
// any authenticated caller. Must run after Authenticate.
func Authorize(roles ...authdomain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abort(c, apperror.Unauthorized("Authentication required"))
			return
		}

		if !user.Role.In(roles) {
			abort(c, apperror.Forbidden("Insufficient permissions"))
			return
		}

		c.Next()
	}
}

// CurrentUser returns the authenticated caller, or nil if Authenticate has
// not run.
func CurrentUser(c *gin.Context) *authdomain.User {
	value, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, ok := value.(*authdomain.User)
	if !ok {
		return nil
	}
	return user
}

func abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
