package middleware

import (
	"context"
	"strings"

	"aurum_backend/internal/auth"
	"aurum_backend/internal/logger"
	"aurum_backend/internal/models"
	"aurum_backend/internal/services"
	"aurum_backend/pkg/apperrors"
	"aurum_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// Authenticator verifies bearer tokens and provisions local users on the fly.
// Every authenticated request carries the resulting *models.User in context.
type Authenticator struct {
	verifier *auth.Verifier
	users    services.UserService
}

func NewAuthenticator(verifier *auth.Verifier, users services.UserService) *Authenticator {
	return &Authenticator{
		verifier: verifier,
		users:    users,
	}
}

func (a *Authenticator) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Abort()
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := a.verifier.Verify(c.Request.Context(), tokenStr)
		if err != nil {
			c.Abort()
			apperrors.HandleError(c, err)
			return
		}

		clientIP := auth.ClientIP(c.Request)
		user, err := a.users.Provision(claims, clientIP)
		if err != nil {
			c.Abort()
			apperrors.HandleError(c, err)
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		ctx = context.WithValue(ctx, contextkeys.AuthUserContextKey, user)
		ctx = context.WithValue(ctx, contextkeys.ClientIPContextKey, clientIP)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole gates a route on an exact role. Runs after Authenticate.
func (a *Authenticator) RequireRole(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || user.Role != role {
			c.Abort()
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			return
		}
		c.Next()
	}
}

// CurrentUser returns the provisioned user, or nil outside Authenticate.
func CurrentUser(c *gin.Context) *models.User {
	user, _ := c.Request.Context().Value(contextkeys.AuthUserContextKey).(*models.User)
	return user
}
