package worker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sandbay-backend/models"
	"sandbay-backend/repository"
	"sandbay-backend/sandbox"
	"sandbay-backend/utils/logger"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron"
)

// Reaper stops sandboxes whose workspaces have been idle longer than the
// configured TTL and records them as stopped. Sweeps are serialized through
// the file lock, so a scheduled sweep and an admin-triggered one never
// overlap.
type Reaper struct {
	config     *models.ReaperConfig
	workspaces repository.WorkspaceRepositoryInterface
	client     sandbox.Client
	lock       *LockManager
	status     *StatusManager
	ownerID    string
	logger     logger.Logger
}

// NewReaper creates a reaper over the given workspace store and sandbox
// provider client.
func NewReaper(cfg *models.Config, workspaces repository.WorkspaceRepositoryInterface, client sandbox.Client, log logger.Logger) *Reaper {
	hostname := os.Getenv("HOSTNAME")
	if hostname == "" {
		hostname = "localhost"
	}
	ownerID := fmt.Sprintf("reaper-%s-%s", hostname, uuid.New().String()[:8])

	reaperConfig := buildReaperConfig(cfg)

	return &Reaper{
		config:     reaperConfig,
		workspaces: workspaces,
		client:     client,
		lock:       NewLockManager(reaperConfig.LockFilePath, reaperConfig.LockTimeout, reaperConfig.Environment),
		status:     NewStatusManager(reaperConfig.StatusFilePath),
		ownerID:    ownerID,
		logger:     log,
	}
}

func buildReaperConfig(cfg *models.Config) *models.ReaperConfig {
	idleTTL := cfg.ReaperIdleTTL
	if idleTTL <= 0 {
		idleTTL = 2 * time.Hour
	}

	schedule := cfg.ReaperSchedule
	if schedule == "" {
		schedule = scheduleForEnvironment(cfg.AppEnv)
	}

	return &models.ReaperConfig{
		CronSchedule:   schedule,
		IdleTTL:        idleTTL,
		LockTimeout:    10 * time.Minute,
		Environment:    cfg.AppEnv,
		LockFilePath:   fmt.Sprintf("/tmp/sandbay-reaper-%s.lock", cfg.AppEnv),
		StatusFilePath: fmt.Sprintf("/tmp/sandbay-reaper-status-%s.json", cfg.AppEnv),
		DryRun:         os.Getenv("REAPER_DRY_RUN") == "true",
		RunOnce:        os.Getenv("REAPER_RUN_ONCE") == "true",
	}
}

// scheduleForEnvironment returns environment-specific sweep schedules
func scheduleForEnvironment(env string) string {
	switch env {
	case "development":
		return "0 */5 * * * *" // Every 5 minutes for development
	case "production":
		return "0 */15 * * * *" // Every 15 minutes for production
	default:
		return "0 */10 * * * *" // Every 10 minutes default
	}
}

// validateReaperConfig validates the reaper configuration
func validateReaperConfig(config *models.ReaperConfig) error {
	if config == nil {
		return fmt.Errorf("reaper config cannot be nil")
	}

	if config.Environment == "" {
		return fmt.Errorf("environment is required")
	}

	if config.IdleTTL <= 0 {
		return fmt.Errorf("idle TTL must be positive")
	}

	if config.LockTimeout <= 0 {
		return fmt.Errorf("lock timeout must be positive")
	}

	if config.LockFilePath == "" {
		return fmt.Errorf("lock file path is required")
	}

	if config.StatusFilePath == "" {
		return fmt.Errorf("status file path is required")
	}

	if config.CronSchedule != "" {
		cronParser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
		if _, err := cronParser.Parse(config.CronSchedule); err != nil {
			return fmt.Errorf("invalid cron schedule '%s': %w", config.CronSchedule, err)
		}
	}

	return nil
}

// Sweep runs one pass over the workspace store, stopping every sandbox whose
// workspace has been idle longer than the TTL. It returns ErrSweepInProgress
// when another sweep holds the lock.
func (r *Reaper) Sweep(ctx context.Context) (*models.SweepResult, error) {
	lockInfo, err := r.lock.AcquireLock(r.ownerID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := r.lock.ReleaseLock(lockInfo); err != nil {
			r.logger.Warnf("Failed to release sweep lock: %v", err)
		}
	}()

	result := &models.SweepResult{
		Status:      models.ReaperStatusSweeping,
		StartTime:   time.Now(),
		Environment: r.config.Environment,
		Records:     make([]models.SweepRecord, 0),
	}
	r.persistSweep(result)

	cutoff := time.Now().Add(-r.config.IdleTTL)
	r.logger.Infof("Sweeping workspaces idle since %s", cutoff.Format(time.RFC3339))

	workspaces, err := r.workspaces.ListIdleWorkspaces(ctx, cutoff)
	if err != nil {
		result.Status = models.ReaperStatusFailed
		result.ErrorMessage = err.Error()
		r.persistSweep(result)
		return nil, fmt.Errorf("failed to list idle workspaces: %w", err)
	}

	for _, ws := range workspaces {
		record := r.sweepOne(ctx, ws)
		result.Records = append(result.Records, record)
		result.Checked++
		switch record.Action {
		case models.SweepActionStopped:
			result.Stopped++
		case models.SweepActionSkipped:
			result.Skipped++
		case models.SweepActionFailed:
			result.Failed++
		}
	}

	result.Status = models.ReaperStatusCompleted
	r.persistSweep(result)

	r.logger.Infof("Sweep completed: %d checked, %d stopped, %d skipped, %d failed",
		result.Checked, result.Stopped, result.Skipped, result.Failed)
	return result, nil
}

// sweepOne stops one idle sandbox and marks its workspace stopped
func (r *Reaper) sweepOne(ctx context.Context, ws *models.Workspace) models.SweepRecord {
	record := models.SweepRecord{
		WorkspaceID: ws.ID,
		SandboxID:   ws.SandboxID,
		IdleFor:     time.Since(ws.LastActiveAt),
	}

	if ws.Status != models.WorkspaceStatusActive {
		record.Action = models.SweepActionSkipped
		record.Detail = fmt.Sprintf("workspace is %s", ws.Status)
		return record
	}

	if r.config.DryRun {
		record.Action = models.SweepActionSkipped
		record.Detail = "dry run"
		return record
	}

	if err := r.client.Stop(ctx, ws.SandboxID); err != nil {
		r.logger.Errorf("Failed to stop idle sandbox %s: %v", ws.SandboxID, err)
		record.Action = models.SweepActionFailed
		record.Detail = err.Error()
		return record
	}

	if err := r.workspaces.UpdateWorkspaceStatus(ctx, ws.ID, models.WorkspaceStatusStopped); err != nil {
		r.logger.Errorf("Stopped sandbox %s but could not record it: %v", ws.SandboxID, err)
		record.Action = models.SweepActionFailed
		record.Detail = fmt.Sprintf("stopped but status update failed: %v", err)
		return record
	}

	r.logger.Infof("Stopped idle sandbox %s (idle for %s)", ws.SandboxID, record.IdleFor.Round(time.Second))
	record.Action = models.SweepActionStopped
	return record
}

func (r *Reaper) persistSweep(result *models.SweepResult) {
	if err := r.status.SaveSweep(result); err != nil {
		r.logger.Warnf("Failed to persist sweep status: %v", err)
	}
}

// Status returns the persisted outcome of the most recent sweep. Before the
// first sweep it reports an idle reaper.
func (r *Reaper) Status() (*models.SweepResult, error) {
	result, err := r.status.LoadSweep()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &models.SweepResult{
				Status:      models.ReaperStatusIdle,
				Environment: r.config.Environment,
			}, nil
		}
		return nil, err
	}
	return result, nil
}
