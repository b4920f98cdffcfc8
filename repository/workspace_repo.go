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

type WorkspaceRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

// NewWorkspaceRepository creates a new workspace repository
func NewWorkspaceRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *WorkspaceRepository {
	return &WorkspaceRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *WorkspaceRepository) table() string {
	return r.config.DynamoDBTablePrefix + "_workspaces"
}

// CreateWorkspace stores a new workspace record
func (r *WorkspaceRepository) CreateWorkspace(ctx context.Context, workspace *models.Workspace) (*models.Workspace, error) {
	// One workspace per sandbox
	var existing []*models.Workspace
	err := r.db.QueryByIndex(ctx, r.table(), "sandbox_id-index", "sandbox_id", workspace.SandboxID, &existing)
	if err == nil && len(existing) > 0 {
		return nil, fmt.Errorf("workspace for sandbox %s: %w", workspace.SandboxID, models.ErrAlreadyExists)
	}

	now := time.Now()
	workspace.ID = utils.GenerateUUID()
	workspace.Status = models.WorkspaceStatusActive
	workspace.CreatedAt = now
	workspace.UpdatedAt = now
	workspace.LastActiveAt = now

	if err := r.db.PutItemIfNotExists(ctx, r.table(), "id", workspace); err != nil {
		if dal.IsConditionalCheckFailed(err) {
			return nil, fmt.Errorf("workspace %s: %w", workspace.ID, models.ErrAlreadyExists)
		}
		r.logger.Errorf("Failed to create workspace: %v", err)
		return nil, err
	}

	r.logger.Infof("Workspace created successfully: %s", workspace.ID)
	return workspace, nil
}

// GetWorkspace fetches a workspace by its ID
func (r *WorkspaceRepository) GetWorkspace(ctx context.Context, id string) (*models.Workspace, error) {
	workspace := &models.Workspace{}
	if err := r.db.GetItem(ctx, r.table(), "id", id, workspace); err != nil {
		return nil, err
	}
	if workspace.ID == "" {
		return nil, fmt.Errorf("workspace %s: %w", id, models.ErrNotFound)
	}
	return workspace, nil
}

// GetWorkspaceBySandboxID fetches the workspace owning a sandbox
func (r *WorkspaceRepository) GetWorkspaceBySandboxID(ctx context.Context, sandboxID string) (*models.Workspace, error) {
	var workspaces []*models.Workspace
	if err := r.db.QueryByIndex(ctx, r.table(), "sandbox_id-index", "sandbox_id", sandboxID, &workspaces); err != nil {
		r.logger.Errorf("Failed to query workspace by sandbox: %v", err)
		return nil, err
	}
	if len(workspaces) == 0 {
		return nil, fmt.Errorf("sandbox %s: %w", sandboxID, models.ErrNotFound)
	}
	return workspaces[0], nil
}

// ListWorkspacesByOwner lists all workspaces owned by a user
func (r *WorkspaceRepository) ListWorkspacesByOwner(ctx context.Context, owner string) ([]*models.Workspace, error) {
	var workspaces []*models.Workspace
	if err := r.db.QueryByIndex(ctx, r.table(), "owner-index", "owner", owner, &workspaces); err != nil {
		return nil, err
	}
	return workspaces, nil
}

// ListIdleWorkspaces returns active workspaces whose last activity is older
// than the cutoff.
func (r *WorkspaceRepository) ListIdleWorkspaces(ctx context.Context, cutoff time.Time) ([]*models.Workspace, error) {
	var workspaces []*models.Workspace
	if err := r.db.Scan(ctx, r.table(), &workspaces); err != nil {
		return nil, err
	}

	idle := make([]*models.Workspace, 0)
	for _, ws := range workspaces {
		if ws.Status == models.WorkspaceStatusActive && ws.LastActiveAt.Before(cutoff) {
			idle = append(idle, ws)
		}
	}
	return idle, nil
}

// UpdateWorkspaceStatus sets the workspace status
func (r *WorkspaceRepository) UpdateWorkspaceStatus(ctx context.Context, id string, status models.WorkspaceStatus) error {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if err := r.db.UpdateItem(ctx, r.table(), "id", id, updates); err != nil {
		r.logger.Errorf("Failed to update workspace status: %v", err)
		return err
	}
	return nil
}

// TouchWorkspace records activity on the workspace, resetting its idle clock
func (r *WorkspaceRepository) TouchWorkspace(ctx context.Context, id string) error {
	now := time.Now()
	updates := map[string]interface{}{
		"last_active_at": now,
		"updated_at":     now,
	}
	return r.db.UpdateItem(ctx, r.table(), "id", id, updates)
}

// DeleteWorkspace removes a workspace record
func (r *WorkspaceRepository) DeleteWorkspace(ctx context.Context, id string) error {
	if err := r.db.DeleteItem(ctx, r.table(), "id", id); err != nil {
		r.logger.Errorf("Failed to delete workspace: %v", err)
		return err
	}
	r.logger.Infof("Workspace deleted: %s", id)
	return nil
}
