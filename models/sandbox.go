package models

import "time"

// SandboxState represents the reported state of a sandbox
type SandboxState string

const (
	SandboxStateRunning SandboxState = "running"
	SandboxStateStopped SandboxState = "stopped"
	SandboxStateUnknown SandboxState = "unknown"
)

// ExecResult captures one remote command execution inside a sandbox
type ExecResult struct {
	ExitCode int           `json:"exit_code"`
	Output   string        `json:"output"`
	Duration time.Duration `json:"duration"`
}

// Success reports whether the remote command exited cleanly
func (r *ExecResult) Success() bool {
	return r.ExitCode == 0
}

// SandboxStateResponse is returned by the workspace state endpoint
type SandboxStateResponse struct {
	SandboxID string       `json:"sandbox_id"`
	State     SandboxState `json:"state"`
}
