package worker

import (
	"context"
	"errors"
	"fmt"
	"sandbay-backend/dal"
	"sandbay-backend/models"
	"sandbay-backend/repository"
	"sandbay-backend/sandbox"
	"sandbay-backend/utils/logger"
	"sync"
	"time"

	"github.com/robfig/cron"
)

// Service runs the reaper on its cron schedule in the background
type Service struct {
	reaper  *Reaper
	cron    *cron.Cron
	config  *models.Config
	logger  logger.Logger
	mu      sync.Mutex
	running bool
}

// NewService builds a self-contained reaper service: it owns its database
// client and provider client, independent of the API's.
func NewService(ctx context.Context, cfg *models.Config, log logger.Logger) (*Service, error) {
	dbclient, err := dal.NewDynamoDBClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create reaper service: %w", err)
	}

	repo := repository.NewRepository(dbclient, cfg, log)
	runner := sandbox.NewRunner()
	client := sandbox.NewCLIClient(cfg, runner, log)

	reaper := NewReaper(cfg, repo.GetWorkspaceRepository(), client, log)
	if err := validateReaperConfig(reaper.config); err != nil {
		return nil, fmt.Errorf("invalid reaper configuration: %w", err)
	}

	return &Service{
		reaper: reaper,
		cron:   cron.New(),
		config: cfg,
		logger: log,
	}, nil
}

// StartInBackground schedules sweeps and returns immediately. With the
// reaper disabled in configuration it logs and does nothing.
func (s *Service) StartInBackground() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("reaper service is already running")
	}

	if !s.config.ReaperEnabled {
		s.logger.Info("Idle-sandbox reaper is disabled")
		return nil
	}

	if s.reaper.config.RunOnce {
		s.logger.Info("Running reaper in run-once mode")
		s.running = true
		go s.sweepJob()
		return nil
	}

	if err := s.cron.AddFunc(s.reaper.config.CronSchedule, s.sweepJob); err != nil {
		return fmt.Errorf("failed to schedule reaper: %w", err)
	}

	s.cron.Start()
	s.running = true
	s.logger.Infof("Idle-sandbox reaper started with schedule %q (idle TTL %s)",
		s.reaper.config.CronSchedule, s.reaper.config.IdleTTL)
	return nil
}

// sweepJob is the cron callback. A sweep already running elsewhere is not an
// error, just a skipped slot.
func (s *Service) sweepJob() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if _, err := s.reaper.Sweep(ctx); err != nil {
		if errors.Is(err, models.ErrSweepInProgress) {
			s.logger.Warnf("Skipping scheduled sweep: %v", err)
			return
		}
		s.logger.Errorf("Scheduled sweep failed: %v", err)
	}
}

// Stop halts the schedule. An in-flight sweep finishes on its own.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.cron.Stop()
	s.running = false
	s.logger.Info("Idle-sandbox reaper stopped")
}

// GetStatus reports the outcome of the most recent sweep
func (s *Service) GetStatus() (*models.SweepResult, error) {
	return s.reaper.Status()
}
