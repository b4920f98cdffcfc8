package models

import "time"

// ReaperStatus represents the current status of the idle-sandbox reaper
type ReaperStatus string

const (
	ReaperStatusIdle      ReaperStatus = "idle"
	ReaperStatusSweeping  ReaperStatus = "sweeping"
	ReaperStatusCompleted ReaperStatus = "completed"
	ReaperStatusFailed    ReaperStatus = "failed"
)

// ReaperConfig holds configuration for the idle-sandbox reaper
type ReaperConfig struct {
	// Cron schedule
	CronSchedule string `json:"cron_schedule"`

	// Idle policy
	IdleTTL time.Duration `json:"idle_ttl"`

	// Lock settings
	LockTimeout time.Duration `json:"lock_timeout"`

	// Environment settings
	Environment string `json:"environment"`

	// Paths
	LockFilePath   string `json:"lock_file_path"`
	StatusFilePath string `json:"status_file_path"`

	// Feature flags
	DryRun  bool `json:"dry_run"`
	RunOnce bool `json:"run_once"`
}

// LockInfo represents the reaper's file lock
type LockInfo struct {
	ID          string    `json:"id"`
	Owner       string    `json:"owner"`
	AcquiredAt  time.Time `json:"acquired_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	Environment string    `json:"environment"`
}

// SweepAction says what the reaper did with one workspace during a sweep
type SweepAction string

const (
	SweepActionStopped SweepAction = "stopped"
	SweepActionSkipped SweepAction = "skipped"
	SweepActionFailed  SweepAction = "failed"
)

// SweepRecord is the per-workspace outcome of one reaper sweep
type SweepRecord struct {
	WorkspaceID string        `json:"workspace_id"`
	SandboxID   string        `json:"sandbox_id"`
	IdleFor     time.Duration `json:"idle_for"`
	Action      SweepAction   `json:"action"`
	Detail      string        `json:"detail,omitempty"`
}

// SweepResult holds the outcome of one reaper sweep execution
type SweepResult struct {
	Status       ReaperStatus  `json:"status"`
	StartTime    time.Time     `json:"start_time"`
	EndTime      *time.Time    `json:"end_time,omitempty"`
	Duration     time.Duration `json:"duration"`
	Checked      int           `json:"checked"`
	Stopped      int           `json:"stopped"`
	Skipped      int           `json:"skipped"`
	Failed       int           `json:"failed"`
	Records      []SweepRecord `json:"records"`
	ErrorMessage string        `json:"error_message,omitempty"`
	Environment  string        `json:"environment"`
}
