package services

import (
	"context"
	"fmt"
	"path"
	"sandbay-backend/models"
	"sandbay-backend/sandbox"
	"sandbay-backend/utils"
	"sync"
	"time"

	"sandbay-backend/utils/logger"
)

// RestartService orchestrates service restarts across every repository of a
// workspace. Individual restart failures are recorded, never raised; the only
// errors it returns come from authorization and sandbox startup.
type RestartService struct {
	workspace   WorkspaceServiceInterface
	lifecycle   SandboxServiceInterface
	client      sandbox.Client
	services    []models.ServiceDefinition
	concurrency int
	outputLimit int
	logger      logger.Logger
}

// NewRestartService creates a new restart orchestration service
func NewRestartService(
	workspace WorkspaceServiceInterface,
	lifecycle SandboxServiceInterface,
	client sandbox.Client,
	cfg *models.Config,
	log logger.Logger,
) *RestartService {
	concurrency := cfg.RestartConcurrency
	if concurrency < 1 {
		concurrency = 1
	}
	outputLimit := cfg.RestartOutputLimit
	if outputLimit <= 0 {
		outputLimit = 500
	}

	return &RestartService{
		workspace:   workspace,
		lifecycle:   lifecycle,
		client:      client,
		services:    cfg.Services,
		concurrency: concurrency,
		outputLimit: outputLimit,
		logger:      log,
	}
}

// RestartServicesComplete authorizes the caller, brings the sandbox into the
// running state, then restarts everything. A sandbox that cannot be started
// aborts the run before any restart is attempted.
func (s *RestartService) RestartServicesComplete(ctx context.Context, sandboxID string, caller *models.JWTClaims) (*models.RestartReport, error) {
	handle, err := s.workspace.Authorize(ctx, sandboxID, caller)
	if err != nil {
		return nil, err
	}

	if err := s.lifecycle.EnsureStarted(ctx, sandboxID); err != nil {
		s.logger.Errorf("Sandbox %s could not be started, aborting restart: %v", sandboxID, err)
		return nil, err
	}

	return s.run(ctx, handle), nil
}

// RestartServices restarts everything in a sandbox the caller guarantees is
// already running. The startup step is skipped entirely.
func (s *RestartService) RestartServices(ctx context.Context, sandboxID string, caller *models.JWTClaims) (*models.RestartReport, error) {
	handle, err := s.workspace.Authorize(ctx, sandboxID, caller)
	if err != nil {
		return nil, err
	}

	return s.run(ctx, handle), nil
}

func (s *RestartService) run(ctx context.Context, handle *models.WorkspaceHandle) *models.RestartReport {
	start := time.Now()
	results := s.restartAll(ctx, handle)
	summary := Summarize(results)

	s.logger.Infof("Restart run for sandbox %s: %d/%d services succeeded across %d repositories in %s",
		handle.SandboxID, summary.Successful, summary.TotalServices, summary.Repositories,
		time.Since(start).Round(time.Millisecond))

	if err := s.workspace.Touch(ctx, handle.WorkspaceID); err != nil {
		s.logger.Warnf("Failed to record workspace activity for %s: %v", handle.WorkspaceID, err)
	}

	return &models.RestartReport{RestartSummary: summary, Results: results}
}

// restartAll fans out over the workspace repositories, bounded by the
// configured concurrency. Result order always matches repository order.
func (s *RestartService) restartAll(ctx context.Context, handle *models.WorkspaceHandle) []models.RepositoryRestartResult {
	repos := handle.Repositories
	results := make([]models.RepositoryRestartResult, len(repos))
	if len(repos) == 0 {
		return results
	}

	workers := s.concurrency
	if workers > len(repos) {
		workers = len(repos)
	}

	if workers <= 1 {
		for i, repo := range repos {
			results[i] = s.restartRepository(ctx, handle, repo)
		}
		return results
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, repo := range repos {
		wg.Add(1)
		go func(i int, repo models.RepositoryDescriptor) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[i] = s.restartRepository(ctx, handle, repo)
		}(i, repo)
	}

	wg.Wait()
	return results
}

// restartRepository walks the configured service set in order. Every service
// gets exactly one result entry, including services skipped by cancellation.
func (s *RestartService) restartRepository(ctx context.Context, handle *models.WorkspaceHandle, repo models.RepositoryDescriptor) models.RepositoryRestartResult {
	services := make(map[string]*models.ServiceRestartResult, len(s.services))

	for _, svc := range s.services {
		select {
		case <-ctx.Done():
			services[svc.Name] = &models.ServiceRestartResult{
				ServiceName: svc.Name,
				Status:      models.RestartStatusFailed,
				Output:      fmt.Sprintf("restart cancelled: %v", ctx.Err()),
			}
			continue
		default:
		}

		services[svc.Name] = s.restartOne(ctx, handle, repo, svc)
	}

	return models.RepositoryRestartResult{Repository: repo.Name, Services: services}
}

// restartOne executes a single restart command. It always produces a result:
// command failures, timeouts and transport errors all come back as failed
// entries with the captured output.
func (s *RestartService) restartOne(ctx context.Context, handle *models.WorkspaceHandle, repo models.RepositoryDescriptor, svc models.ServiceDefinition) *models.ServiceRestartResult {
	workdir := path.Join(handle.RootDir, repo.Path)

	result, err := s.client.Exec(ctx, handle.SandboxID, workdir, svc.RestartCommand)
	if err != nil {
		s.logger.Errorf("Restart of %s in %s failed to execute: %v", svc.Name, repo.Name, err)
		return &models.ServiceRestartResult{
			ServiceName: svc.Name,
			Status:      models.RestartStatusFailed,
			Output:      utils.Truncate(err.Error(), s.outputLimit),
		}
	}

	status := models.RestartStatusFailed
	if result.Success() {
		status = models.RestartStatusSuccess
	} else {
		s.logger.Warnf("Restart of %s in %s exited with code %d", svc.Name, repo.Name, result.ExitCode)
	}

	return &models.ServiceRestartResult{
		ServiceName: svc.Name,
		Status:      status,
		Output:      utils.Truncate(result.Output, s.outputLimit),
		DurationMs:  result.Duration.Milliseconds(),
	}
}

// Summarize reduces per-repository results to aggregate counts. An empty run
// summarizes to all zeros.
func Summarize(results []models.RepositoryRestartResult) models.RestartSummary {
	summary := models.RestartSummary{Repositories: len(results)}

	for _, repo := range results {
		for _, svc := range repo.Services {
			summary.TotalServices++
			if svc.Status == models.RestartStatusSuccess {
				summary.Successful++
			} else {
				summary.Failed++
			}
		}
	}

	return summary
}
