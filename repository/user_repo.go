package repository

import (
	"context"
	"fmt"
	"sandbay-backend/dal"
	"sandbay-backend/models"
	"sandbay-backend/utils"
	"time"

	"sandbay-backend/utils/logger"
)

type UserRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *UserRepository) table() string {
	return r.config.DynamoDBTablePrefix + "_users"
}

// CreateUser stores a new user after checking email and username uniqueness
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	var existing []*models.User
	err := r.db.QueryByIndex(ctx, r.table(), "email-index", "email", user.Email, &existing)
	if err == nil && len(existing) > 0 {
		return nil, fmt.Errorf("user with email %s: %w", user.Email, models.ErrAlreadyExists)
	}

	existing = nil
	err = r.db.QueryByIndex(ctx, r.table(), "username-index", "username", user.Username, &existing)
	if err == nil && len(existing) > 0 {
		return nil, fmt.Errorf("user with username %s: %w", user.Username, models.ErrAlreadyExists)
	}

	now := time.Now()
	user.ID = utils.GenerateUUID()
	user.Status = models.UserStatusActive
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := r.db.PutItemIfNotExists(ctx, r.table(), "id", user); err != nil {
		if dal.IsConditionalCheckFailed(err) {
			return nil, fmt.Errorf("user %s: %w", user.ID, models.ErrAlreadyExists)
		}
		r.logger.Errorf("Failed to create user: %v", err)
		return nil, err
	}

	r.logger.Infof("User created successfully: %s", user.ID)
	return user, nil
}

// GetUserByID fetches a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user := &models.User{}
	if err := r.db.GetItem(ctx, r.table(), "id", id, user); err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, fmt.Errorf("user %s: %w", id, models.ErrNotFound)
	}
	return user, nil
}

// GetUserByEmail fetches a user through the email index
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var users []*models.User
	if err := r.db.QueryByIndex(ctx, r.table(), "email-index", "email", email, &users); err != nil {
		r.logger.Errorf("Failed to query user by email: %v", err)
		return nil, err
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("user %s: %w", email, models.ErrNotFound)
	}
	return users[0], nil
}

// UpdateLastLogin stamps the user's last login time
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string) error {
	now := time.Now()
	updates := map[string]interface{}{
		"last_login_at": now,
		"updated_at":    now,
	}
	return r.db.UpdateItem(ctx, r.table(), "id", id, updates)
}
