package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	infraRepo "github.com/restrodesk/restrodesk-api/internal/infrastructure/repository"
	"github.com/restrodesk/restrodesk-api/internal/presentation/http/dto/response"
	"github.com/restrodesk/restrodesk-api/pkg/utils"
)

// AuthMiddleware validates the bearer token and binds the caller's
// restaurant to the request. Every repository query downstream is scoped
// by the restaurant id placed on the request context here; a request that
// never passes through this middleware matches no rows.
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}
		if claims.RestaurantID == uuid.Nil {
			response.Unauthorized(c, "Token is not bound to a restaurant")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("restaurant_id", claims.RestaurantID)

		ctx := infraRepo.WithTenant(c.Request.Context(), claims.RestaurantID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetTenantID returns the authenticated restaurant id, uuid.Nil when the
// request is unauthenticated.
func GetTenantID(c *gin.Context) uuid.UUID {
	val, exists := c.Get("restaurant_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := val.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
