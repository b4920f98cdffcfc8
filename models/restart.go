package models

// RestartStatus is the outcome of one service restart attempt
type RestartStatus string

const (
	RestartStatusSuccess RestartStatus = "success"
	RestartStatusFailed  RestartStatus = "failed"
)

// ServiceDefinition names one long-lived service and the command that
// restarts it. The set of definitions is shared configuration, ordered,
// and identical for every repository in a workspace.
type ServiceDefinition struct {
	Name           string `json:"name" mapstructure:"name"`
	RestartCommand string `json:"restart_command" mapstructure:"restart_command"`
}

// ServiceRestartResult records the outcome of restarting one service of one
// repository. Exactly one exists per (repository, service) pair, whether the
// restart succeeded or not. Output is truncated to the configured limit.
type ServiceRestartResult struct {
	ServiceName string        `json:"service_name"`
	Status      RestartStatus `json:"status"`
	Output      string        `json:"output,omitempty"`
	DurationMs  int64         `json:"duration_ms"`
}

// RepositoryRestartResult groups the per-service results for one repository,
// keyed by service name.
type RepositoryRestartResult struct {
	Repository string                           `json:"repository"`
	Services   map[string]*ServiceRestartResult `json:"services"`
}

// RestartSummary is the aggregate view of one orchestration run
type RestartSummary struct {
	Repositories  int `json:"repositories"`
	TotalServices int `json:"total_services"`
	Successful    int `json:"successful"`
	Failed        int `json:"failed"`
}

// RestartReport is the full response shape: summary counts plus the ordered
// per-repository results (input repository order)
type RestartReport struct {
	RestartSummary
	Results []RepositoryRestartResult `json:"results"`
}

// ServiceRestartRequest is the request body for the restart endpoint
type ServiceRestartRequest struct {
	SkipStart bool `json:"skip_start"` // Caller guarantees the sandbox is already running
}
