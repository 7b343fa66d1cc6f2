package middleware

import (
	"context"
	"net/http"
	"strings"

	"go-talent-directory/internal/delivery/http/response"
	"go-talent-directory/internal/domain"
	"go-talent-directory/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the HS256 access token and loads the account so the
// role in the request context is always fresh, never the (possibly stale) JWT
// claim.
func AuthMiddleware(tokens *auth.TokenManager, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		// 1. Try to get the token from the header
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			// 2. Fall back to the cookie
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Verify(tokenString, auth.TokenTypeAccess)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		user, err := authUC.CurrentUser(c.Request.Context(), claims.UserID)
		if err != nil || user == nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRole), user.Role)

		// Usecases read the typed keys off the request context.
		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, user.ID)
		ctx = context.WithValue(ctx, domain.KeyUserEmail, user.Email)
		ctx = context.WithValue(ctx, domain.KeyUserRole, user.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole guards a route group behind a role loaded by AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetString(string(domain.KeyUserRole))
		if got != role {
			response.Error(c, http.StatusForbidden, "Insufficient permissions", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
