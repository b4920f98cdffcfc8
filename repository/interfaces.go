package repository

import (
	"context"
	"sandbay-backend/models"
	"time"
)

// WorkspaceRepositoryInterface defines the contract for workspace repository operations
type WorkspaceRepositoryInterface interface {
	CreateWorkspace(ctx context.Context, workspace *models.Workspace) (*models.Workspace, error)
	GetWorkspace(ctx context.Context, id string) (*models.Workspace, error)
	GetWorkspaceBySandboxID(ctx context.Context, sandboxID string) (*models.Workspace, error)
	ListWorkspacesByOwner(ctx context.Context, owner string) ([]*models.Workspace, error)
	ListIdleWorkspaces(ctx context.Context, cutoff time.Time) ([]*models.Workspace, error)
	UpdateWorkspaceStatus(ctx context.Context, id string, status models.WorkspaceStatus) error
	TouchWorkspace(ctx context.Context, id string) error
	DeleteWorkspace(ctx context.Context, id string) error
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id string) error
}

// RepositoryContainerInterface defines the contract for the repository container
type RepositoryContainerInterface interface {
	GetWorkspaceRepository() WorkspaceRepositoryInterface
	GetUserRepository() UserRepositoryInterface
}
