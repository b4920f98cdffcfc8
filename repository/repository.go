package repository

import (
	"sandbay-backend/dal"
	"sandbay-backend/models"

	"sandbay-backend/utils/logger"
)

type Repository struct {
	Workspace *WorkspaceRepository
	User      *UserRepository
}

func NewRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *Repository {
	return &Repository{
		Workspace: NewWorkspaceRepository(db, cfg, log),
		User:      NewUserRepository(db, cfg, log),
	}
}

// GetWorkspaceRepository returns the workspace repository
func (r *Repository) GetWorkspaceRepository() WorkspaceRepositoryInterface {
	return r.Workspace
}

// GetUserRepository returns the user repository
func (r *Repository) GetUserRepository() UserRepositoryInterface {
	return r.User
}
