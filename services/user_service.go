package services

import (
	"context"
	"errors"
	"fmt"
	"sandbay-backend/models"
	"sandbay-backend/repository"
	"sandbay-backend/utils"

	"sandbay-backend/utils/logger"
)

// UserService handles registration and credential authentication
type UserService struct {
	repo   repository.UserRepositoryInterface
	tokens TokenGenerator
	config *models.Config
	logger logger.Logger
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, tokens TokenGenerator, cfg *models.Config, log logger.Logger) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
		config: cfg,
		logger: log,
	}
}

// Register creates a new user account
func (s *UserService) Register(ctx context.Context, req *models.RegisterUser) (*models.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.logger.Errorf("Failed to hash password: %v", err)
		return nil, err
	}

	user := &models.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		Role:         models.UserRoleUser,
	}

	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("User registered: %s", created.Email)
	return created, nil
}

// Login verifies credentials and issues an access token. Wrong email and
// wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("invalid email or password: %w", models.ErrUnauthorized)
		}
		return nil, err
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Warnf("Failed login attempt for %s", req.Email)
		return nil, fmt.Errorf("invalid email or password: %w", models.ErrUnauthorized)
	}

	if user.Status != models.UserStatusActive {
		s.logger.Warnf("Login rejected for %s account %s", user.Status, req.Email)
		return nil, fmt.Errorf("account is %s: %w", user.Status, models.ErrUnauthorized)
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		s.logger.Errorf("Token generation failed for %s: %v", user.ID, err)
		return nil, err
	}

	if err := s.repo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warnf("Failed to record last login for %s: %v", user.ID, err)
	}

	return &models.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.config.JWTExpiresIn.Seconds()),
		User:        user,
	}, nil
}

// GetUserByID fetches a user by ID
func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetUserByID(ctx, id)
}
