package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/restrodesk/restrodesk-api/internal/presentation/http/dto/response"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetRestaurantID extracts the authenticated restaurant ID from the Gin context
func GetRestaurantID(c *gin.Context) *uuid.UUID {
	val, exists := c.Get("restaurant_id")
	if !exists {
		return nil
	}
	restaurantID, ok := val.(uuid.UUID)
	if !ok {
		return nil
	}
	return &restaurantID
}

// parseIDParam parses a uuid path parameter. On a malformed value it
// writes a 400 response and returns false.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func parseAmount(value string) (float64, error) {
	return strconv.ParseFloat(value, 64)
}

func parseMonths(value string) (int, error) {
	return strconv.Atoi(value)
}
