package sandbox

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sandbay-backend/models"
	"time"
)

type execRunner struct{}

// NewRunner creates a CommandRunner backed by os/exec
func NewRunner() CommandRunner {
	return execRunner{}
}

// Run executes the command and captures stdout and stderr interleaved.
// A killed process, including one killed by context timeout, surfaces as
// exit code -1 with whatever output was produced.
func (execRunner) Run(ctx context.Context, name string, args ...string) (*models.ExecResult, error) {
	start := time.Now()
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	duration := time.Since(start)

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &models.ExecResult{
				ExitCode: exitErr.ExitCode(),
				Output:   string(output),
				Duration: duration,
			}, nil
		}
		return nil, fmt.Errorf("run %s: %w", name, err)
	}

	return &models.ExecResult{
		ExitCode: 0,
		Output:   string(output),
		Duration: duration,
	}, nil
}
