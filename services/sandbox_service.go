package services

import (
	"context"
	"fmt"
	"sandbay-backend/models"
	"sandbay-backend/sandbox"
	"time"

	"sandbay-backend/utils/logger"
)

// SandboxService drives sandbox lifecycle through the provider client
type SandboxService struct {
	client        sandbox.Client
	startTimeout  time.Duration
	startInterval time.Duration
	logger        logger.Logger
}

// NewSandboxService creates a new sandbox lifecycle service
func NewSandboxService(client sandbox.Client, cfg *models.Config, log logger.Logger) *SandboxService {
	startTimeout := cfg.ProviderStartTimeout
	if startTimeout <= 0 {
		startTimeout = 60 * time.Second
	}
	startInterval := cfg.ProviderStartInterval
	if startInterval <= 0 {
		startInterval = 2 * time.Second
	}

	return &SandboxService{
		client:        client,
		startTimeout:  startTimeout,
		startInterval: startInterval,
		logger:        log,
	}
}

// GetState reports the provider's view of the sandbox
func (s *SandboxService) GetState(ctx context.Context, sandboxID string) (models.SandboxState, error) {
	state, err := s.client.State(ctx, sandboxID)
	if err != nil {
		s.logger.Errorf("Failed to get state of sandbox %s: %v", sandboxID, err)
		return models.SandboxStateUnknown, err
	}
	return state, nil
}

// EnsureStarted brings the sandbox into the running state. Calling it on a
// running sandbox does nothing; otherwise it issues a start and polls until
// the sandbox reports running or the start window closes.
func (s *SandboxService) EnsureStarted(ctx context.Context, sandboxID string) error {
	state, err := s.client.State(ctx, sandboxID)
	if err != nil {
		return fmt.Errorf("check sandbox %s: %w", sandboxID, err)
	}
	if state == models.SandboxStateRunning {
		s.logger.Debugf("Sandbox %s already running", sandboxID)
		return nil
	}

	s.logger.Infof("Starting sandbox %s (current state: %s)", sandboxID, state)
	if err := s.client.Start(ctx, sandboxID); err != nil {
		return fmt.Errorf("start sandbox %s: %v: %w", sandboxID, err, models.ErrStartFailure)
	}

	return s.waitUntilRunning(ctx, sandboxID)
}

func (s *SandboxService) waitUntilRunning(ctx context.Context, sandboxID string) error {
	deadline := time.Now().Add(s.startTimeout)
	ticker := time.NewTicker(s.startInterval)
	defer ticker.Stop()

	for {
		state, err := s.client.State(ctx, sandboxID)
		if err == nil && state == models.SandboxStateRunning {
			s.logger.Infof("Sandbox %s is running", sandboxID)
			return nil
		}
		if err != nil {
			s.logger.Warnf("State check failed while waiting for %s: %v", sandboxID, err)
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("sandbox %s not running after %s: %w", sandboxID, s.startTimeout, models.ErrStartFailure)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for sandbox %s: %v: %w", sandboxID, ctx.Err(), models.ErrStartFailure)
		case <-ticker.C:
		}
	}
}

// StopSandbox shuts the sandbox down
func (s *SandboxService) StopSandbox(ctx context.Context, sandboxID string) error {
	if err := s.client.Stop(ctx, sandboxID); err != nil {
		s.logger.Errorf("Failed to stop sandbox %s: %v", sandboxID, err)
		return err
	}
	s.logger.Infof("Sandbox %s stopped", sandboxID)
	return nil
}
