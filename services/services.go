package services

import (
	"sandbay-backend/models"
	"sandbay-backend/repository"
	"sandbay-backend/sandbox"
	"sandbay-backend/utils/logger"
)

// Service implements ServiceContainerInterface
type Service struct {
	workspaceService WorkspaceServiceInterface
	sandboxService   SandboxServiceInterface
	restartService   RestartServiceInterface
	userService      UserServiceInterface
	repoListService  RepoListServiceInterface
}

// NewService creates a new service container with all dependencies injected
func NewService(
	repoContainer repository.RepositoryContainerInterface,
	sandboxClient sandbox.Client,
	runner sandbox.CommandRunner,
	tokens TokenGenerator,
	logger logger.Logger,
	config *models.Config,
) ServiceContainerInterface {
	workspaceService := NewWorkspaceService(repoContainer.GetWorkspaceRepository(), logger)
	sandboxService := NewSandboxService(sandboxClient, config, logger)

	return &Service{
		workspaceService: workspaceService,
		sandboxService:   sandboxService,
		restartService:   NewRestartService(workspaceService, sandboxService, sandboxClient, config, logger),
		userService:      NewUserService(repoContainer.GetUserRepository(), tokens, config, logger),
		repoListService:  NewRepoListService(config, runner, logger),
	}
}

// GetWorkspaceService returns the workspace service interface
func (s *Service) GetWorkspaceService() WorkspaceServiceInterface {
	return s.workspaceService
}

// GetSandboxService returns the sandbox lifecycle service interface
func (s *Service) GetSandboxService() SandboxServiceInterface {
	return s.sandboxService
}

// GetRestartService returns the restart orchestration service interface
func (s *Service) GetRestartService() RestartServiceInterface {
	return s.restartService
}

// GetUserService returns the user service interface
func (s *Service) GetUserService() UserServiceInterface {
	return s.userService
}

// GetRepoListService returns the GitHub listing service interface
func (s *Service) GetRepoListService() RepoListServiceInterface {
	return s.repoListService
}
