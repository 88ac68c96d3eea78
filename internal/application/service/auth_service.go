package service

import (
	"context"

	"github.com/restrodesk/restrodesk-api/internal/domain/entity"
	"github.com/restrodesk/restrodesk-api/internal/domain/repository"
	"github.com/restrodesk/restrodesk-api/pkg/apperror"
	"github.com/restrodesk/restrodesk-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and token refresh
type AuthService struct {
	userRepo       repository.UserRepository
	restaurantRepo repository.RestaurantRepository
	jwtManager     *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	restaurantRepo repository.RestaurantRepository,
	jwtManager *utils.JWTManager,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		restaurantRepo: restaurantRepo,
		jwtManager:     jwtManager,
	}
}

// RegisterInput represents the registration input
type RegisterInput struct {
	RestaurantName string
	Address        string
	Phone          string
	GSTIN          string
	Name           string
	Email          string
	Password       string
}

// TokenPair is an access/refresh token pair
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Register creates a restaurant and its first user account
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.User, *TokenPair, error) {
	if input.RestaurantName == "" || input.Email == "" || len(input.Password) < 8 {
		return nil, nil, apperror.NewBadRequestError("Restaurant name, email and a password of at least 8 characters are required")
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, apperror.NewConflictError("Email already registered")
	}

	restaurant := &entity.Restaurant{
		Name:    input.RestaurantName,
		Slug:    utils.Slugify(input.RestaurantName),
		Address: input.Address,
		Phone:   input.Phone,
		GSTIN:   input.GSTIN,
	}
	if err := s.restaurantRepo.Create(ctx, restaurant); err != nil {
		return nil, nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := &entity.User{
		RestaurantID: restaurant.ID,
		Name:         input.Name,
		Email:        input.Email,
		Password:     string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Login authenticates a user by email and password
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, *TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, apperror.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Refresh exchanges a refresh token for a fresh pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidToken
	}

	return s.issueTokens(user)
}

func (s *AuthService) issueTokens(user *entity.User) (*TokenPair, error) {
	access, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.RestaurantID)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
