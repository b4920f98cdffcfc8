package services

import (
	"context"
	"sandbay-backend/models"
)

// WorkspaceServiceInterface defines the contract for workspace service
type WorkspaceServiceInterface interface {
	CreateWorkspace(ctx context.Context, owner string, req *models.CreateWorkspaceRequest) (*models.Workspace, error)
	GetWorkspace(ctx context.Context, id string, caller *models.JWTClaims) (*models.Workspace, error)
	ListWorkspaces(ctx context.Context, owner string) ([]*models.Workspace, error)
	DeleteWorkspace(ctx context.Context, id string, caller *models.JWTClaims) error

	// Authorize resolves a sandbox ID to a workspace handle after checking
	// the record is complete and the caller owns it
	Authorize(ctx context.Context, sandboxID string, caller *models.JWTClaims) (*models.WorkspaceHandle, error)

	// Touch resets the workspace idle clock
	Touch(ctx context.Context, workspaceID string) error
}

// SandboxServiceInterface defines the contract for sandbox lifecycle operations
type SandboxServiceInterface interface {
	GetState(ctx context.Context, sandboxID string) (models.SandboxState, error)

	// EnsureStarted is a no-op on a running sandbox. Otherwise it starts the
	// sandbox and polls until running or the start window closes.
	EnsureStarted(ctx context.Context, sandboxID string) error

	StopSandbox(ctx context.Context, sandboxID string) error
}

// RestartServiceInterface defines the contract for restart orchestration
type RestartServiceInterface interface {
	// RestartServicesComplete authorizes the caller, brings the sandbox up if
	// needed, then restarts every configured service in every repository.
	RestartServicesComplete(ctx context.Context, sandboxID string, caller *models.JWTClaims) (*models.RestartReport, error)

	// RestartServices is the same flow for a sandbox the caller guarantees is
	// already running.
	RestartServices(ctx context.Context, sandboxID string, caller *models.JWTClaims) (*models.RestartReport, error)
}

// UserServiceInterface defines the contract for user service
type UserServiceInterface interface {
	Register(ctx context.Context, req *models.RegisterUser) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// RepoListServiceInterface defines the contract for the GitHub listing service
type RepoListServiceInterface interface {
	ListRepositories(ctx context.Context, owner string) (*models.RepositoryListing, error)
}

// TokenGenerator issues signed access tokens. Implemented by the JWT manager.
type TokenGenerator interface {
	GenerateToken(user *models.User) (string, error)
}

// ServiceContainerInterface defines the main service container contract
type ServiceContainerInterface interface {
	GetWorkspaceService() WorkspaceServiceInterface
	GetSandboxService() SandboxServiceInterface
	GetRestartService() RestartServiceInterface
	GetUserService() UserServiceInterface
	GetRepoListService() RepoListServiceInterface
}
