package models

import "time"

// Config holds all configuration for the application
type Config struct {
	// Application
	AppName    string `mapstructure:"app_name"`
	AppVersion string `mapstructure:"app_version"`
	AppEnv     string `mapstructure:"app_env"`
	AppHost    string `mapstructure:"app_host"`
	AppPort    string `mapstructure:"app_port"`

	// JWT
	JWTSecret    string        `mapstructure:"jwt_secret"`
	JWTExpiresIn time.Duration `mapstructure:"jwt_expires_in"`

	// AWS
	AWSRegion           string `mapstructure:"aws_region"`
	AWSAccessKeyID      string `mapstructure:"aws_access_key_id"`
	AWSSecretAccessKey  string `mapstructure:"aws_secret_access_key"`
	DynamoDBEndpoint    string `mapstructure:"dynamodb_endpoint"`
	DynamoDBTablePrefix string `mapstructure:"dynamodb_table_prefix"`

	// Sandbox provider CLI
	ProviderBinary        string        `mapstructure:"provider_binary"`
	ProviderExecTimeout   time.Duration `mapstructure:"provider_exec_timeout"`
	ProviderStartTimeout  time.Duration `mapstructure:"provider_start_timeout"`
	ProviderStartInterval time.Duration `mapstructure:"provider_start_interval"`

	// Restart orchestration
	RestartConcurrency int                 `mapstructure:"restart_concurrency"`
	RestartOutputLimit int                 `mapstructure:"restart_output_limit"`
	Services           []ServiceDefinition `mapstructure:"services"`

	// GitHub CLI
	GitHubCLIPath     string        `mapstructure:"github_cli_path"`
	GitHubListLimit   int           `mapstructure:"github_list_limit"`
	GitHubListTimeout time.Duration `mapstructure:"github_list_timeout"`

	// Idle sandbox reaper
	ReaperEnabled  bool          `mapstructure:"reaper_enabled"`
	ReaperIdleTTL  time.Duration `mapstructure:"reaper_idle_ttl"`
	ReaperSchedule string        `mapstructure:"reaper_schedule"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// CORS
	CORSOrigins []string `mapstructure:"cors_origins"`

	// Base Path
	BasePath string `mapstructure:"basePath"`

	Tables []string `mapstructure:"tables"`
}
