package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/restrodesk/restrodesk-api/internal/application/service"
	"github.com/restrodesk/restrodesk-api/internal/presentation/http/dto/request"
	"github.com/restrodesk/restrodesk-api/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a restaurant together with its owner account
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, tokens, err := h.authService.Register(c.Request.Context(), &service.RegisterInput{
		RestaurantName: req.RestaurantName,
		Address:        req.Address,
		Phone:          req.Phone,
		GSTIN:          req.GSTIN,
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Restaurant registered successfully", gin.H{
		"user":   user,
		"tokens": tokens,
	})
}

// Login authenticates a user and issues a token pair
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, tokens, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"user":   user,
		"tokens": tokens,
	})
}

// RefreshToken exchanges a refresh token for a new token pair
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req request.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tokens, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Token refreshed", tokens)
}
