// Package middleware contains the gin middleware chain: request
// authentication, role gating and central error rendering.
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tawan/eduadmin/internal/app/models"
	"github.com/tawan/eduadmin/internal/app/models/dto"
	"github.com/tawan/eduadmin/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ContextUserID   = "userID"
	ContextRoleID   = "roleID"
	ContextRoleName = "roleName"
)

// AuthMiddleware handles authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth validates the bearer token and stores the authenticated
// identity on the request context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error("Authentication required"))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				message = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error(message))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRoleID, claims.RoleID)
		c.Set(ContextRoleName, claims.RoleName)

		c.Next()
	}
}

// RoleRequired allows only the given roles past. It must run after
// JWTAuth.
func (m *AuthMiddleware) RoleRequired(roles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := Role(c)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.Error("Insufficient permissions"))
	}
}

// UserID returns the authenticated user id set by JWTAuth
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// Role returns the authenticated role set by JWTAuth
func Role(c *gin.Context) models.RoleType {
	return models.RoleType(c.GetString(ContextRoleName))
}
