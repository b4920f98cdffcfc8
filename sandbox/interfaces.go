package sandbox

import (
	"context"
	"sandbay-backend/models"
)

// CommandRunner executes a local command and reports its exit code and
// combined output. A non-zero exit is a normal result, not an error; the
// error return is reserved for commands that could not run at all.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (*models.ExecResult, error)
}

// Client is the provider-facing surface for one sandbox
type Client interface {
	// State reports whether the sandbox is running, stopped or unknown
	State(ctx context.Context, sandboxID string) (models.SandboxState, error)

	// Start asks the provider to boot the sandbox. It returns once the
	// request is accepted; callers poll State for readiness.
	Start(ctx context.Context, sandboxID string) error

	// Stop shuts the sandbox down
	Stop(ctx context.Context, sandboxID string) error

	// Exec runs a shell command inside the sandbox from the given working
	// directory, bounded by the configured execution timeout.
	Exec(ctx context.Context, sandboxID, workdir, command string) (*models.ExecResult, error)
}
