package request

// RegisterRequest creates a restaurant together with its owner account
type RegisterRequest struct {
	RestaurantName string `json:"restaurantName" binding:"required,min=2,max=255"`
	Address        string `json:"address" binding:"omitempty,max=500"`
	Phone          string `json:"phone" binding:"omitempty,max=20"`
	GSTIN          string `json:"gstin" binding:"omitempty,max=20"`
	Name           string `json:"name" binding:"required,min=2,max=255"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents a token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}
