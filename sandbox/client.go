package sandbox

import (
	"context"
	"fmt"
	"sandbay-backend/models"
	"strings"
	"time"

	"sandbay-backend/utils/logger"

	"github.com/tidwall/gjson"
)

// CLIClient drives sandboxes through the provider's command line binary
type CLIClient struct {
	binary      string
	execTimeout time.Duration
	runner      CommandRunner
	logger      logger.Logger
}

// NewCLIClient creates a provider client from the configured binary
func NewCLIClient(cfg *models.Config, runner CommandRunner, log logger.Logger) *CLIClient {
	return &CLIClient{
		binary:      cfg.ProviderBinary,
		execTimeout: cfg.ProviderExecTimeout,
		runner:      runner,
		logger:      log,
	}
}

// State queries the provider for the sandbox state
func (c *CLIClient) State(ctx context.Context, sandboxID string) (models.SandboxState, error) {
	result, err := c.runner.Run(ctx, c.binary, "status", sandboxID, "--format", "json")
	if err != nil {
		return models.SandboxStateUnknown, err
	}
	if !result.Success() {
		return models.SandboxStateUnknown, fmt.Errorf("provider status exited with code %d: %s",
			result.ExitCode, strings.TrimSpace(result.Output))
	}

	switch gjson.Get(result.Output, "state").String() {
	case "running":
		return models.SandboxStateRunning, nil
	case "stopped":
		return models.SandboxStateStopped, nil
	default:
		c.logger.Warnf("Provider reported unrecognized state for %s: %s", sandboxID, strings.TrimSpace(result.Output))
		return models.SandboxStateUnknown, nil
	}
}

// Start asks the provider to boot the sandbox
func (c *CLIClient) Start(ctx context.Context, sandboxID string) error {
	result, err := c.runner.Run(ctx, c.binary, "start", sandboxID)
	if err != nil {
		return err
	}
	if !result.Success() {
		return fmt.Errorf("provider start exited with code %d: %s",
			result.ExitCode, strings.TrimSpace(result.Output))
	}
	return nil
}

// Stop shuts the sandbox down
func (c *CLIClient) Stop(ctx context.Context, sandboxID string) error {
	result, err := c.runner.Run(ctx, c.binary, "stop", sandboxID)
	if err != nil {
		return err
	}
	if !result.Success() {
		return fmt.Errorf("provider stop exited with code %d: %s",
			result.ExitCode, strings.TrimSpace(result.Output))
	}
	return nil
}

// Exec runs a shell command inside the sandbox. The configured execution
// timeout bounds every command; a timed out command comes back as a failed
// result rather than an error.
func (c *CLIClient) Exec(ctx context.Context, sandboxID, workdir, command string) (*models.ExecResult, error) {
	if c.execTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.execTimeout)
		defer cancel()
	}

	return c.runner.Run(ctx, c.binary, "exec", sandboxID, "--workdir", workdir, "--", "sh", "-c", command)
}
