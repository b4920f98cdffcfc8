package services

import (
	"context"
	"fmt"
	"sandbay-backend/models"
	"sandbay-backend/repository"

	"sandbay-backend/utils/logger"
)

// WorkspaceService manages workspace records and owns the authorization gate
// in front of every sandbox operation
type WorkspaceService struct {
	repo   repository.WorkspaceRepositoryInterface
	logger logger.Logger
}

// NewWorkspaceService creates a new workspace service
func NewWorkspaceService(repo repository.WorkspaceRepositoryInterface, log logger.Logger) *WorkspaceService {
	return &WorkspaceService{
		repo:   repo,
		logger: log,
	}
}

// CreateWorkspace registers a sandbox under the calling user
func (s *WorkspaceService) CreateWorkspace(ctx context.Context, owner string, req *models.CreateWorkspaceRequest) (*models.Workspace, error) {
	workspace := &models.Workspace{
		SandboxID:    req.SandboxID,
		Owner:        owner,
		RootDir:      req.RootDir,
		Repositories: req.Repositories,
	}

	created, err := s.repo.CreateWorkspace(ctx, workspace)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("Workspace %s registered for sandbox %s", created.ID, created.SandboxID)
	return created, nil
}

// GetWorkspace fetches a workspace the caller is allowed to see
func (s *WorkspaceService) GetWorkspace(ctx context.Context, id string, caller *models.JWTClaims) (*models.Workspace, error) {
	workspace, err := s.repo.GetWorkspace(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkOwnership(workspace, caller); err != nil {
		return nil, err
	}
	return workspace, nil
}

// ListWorkspaces lists the caller's workspaces
func (s *WorkspaceService) ListWorkspaces(ctx context.Context, owner string) ([]*models.Workspace, error) {
	return s.repo.ListWorkspacesByOwner(ctx, owner)
}

// DeleteWorkspace removes a workspace the caller owns
func (s *WorkspaceService) DeleteWorkspace(ctx context.Context, id string, caller *models.JWTClaims) error {
	workspace, err := s.repo.GetWorkspace(ctx, id)
	if err != nil {
		return err
	}

	if err := s.checkOwnership(workspace, caller); err != nil {
		return err
	}

	return s.repo.DeleteWorkspace(ctx, id)
}

// Authorize resolves a sandbox ID to a workspace handle. It fails with the
// appropriate sentinel when the workspace is missing, incomplete, or owned by
// someone else.
func (s *WorkspaceService) Authorize(ctx context.Context, sandboxID string, caller *models.JWTClaims) (*models.WorkspaceHandle, error) {
	if caller == nil {
		return nil, fmt.Errorf("no caller identity: %w", models.ErrUnauthorized)
	}

	workspace, err := s.repo.GetWorkspaceBySandboxID(ctx, sandboxID)
	if err != nil {
		return nil, err
	}

	if workspace.SandboxID == "" || workspace.RootDir == "" {
		s.logger.Errorf("Workspace %s has an incomplete sandbox configuration", workspace.ID)
		return nil, fmt.Errorf("workspace %s: %w", workspace.ID, models.ErrMissingConfiguration)
	}

	if err := s.checkOwnership(workspace, caller); err != nil {
		return nil, err
	}

	return &models.WorkspaceHandle{
		WorkspaceID:  workspace.ID,
		SandboxID:    workspace.SandboxID,
		RootDir:      workspace.RootDir,
		Owner:        workspace.Owner,
		Repositories: workspace.Repositories,
	}, nil
}

// Touch resets the workspace idle clock
func (s *WorkspaceService) Touch(ctx context.Context, workspaceID string) error {
	return s.repo.TouchWorkspace(ctx, workspaceID)
}

func (s *WorkspaceService) checkOwnership(workspace *models.Workspace, caller *models.JWTClaims) error {
	if caller == nil {
		return fmt.Errorf("no caller identity: %w", models.ErrUnauthorized)
	}
	if workspace.Owner != caller.UserID && caller.Role != models.UserRoleAdmin {
		s.logger.Warnf("User %s denied access to workspace %s", caller.UserID, workspace.ID)
		return fmt.Errorf("workspace %s: %w", workspace.ID, models.ErrUnauthorized)
	}
	return nil
}
