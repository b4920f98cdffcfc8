package utils

import (
	"encoding/json"
	"sandbay-backend/models"

	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// GetConfig reads the configuration from environment variables or config files
func GetConfig() (*models.Config, error) {
	config, err := Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return config, nil
}

// Load initializes and returns the application configuration using Viper
func Load() (*models.Config, error) {
	v := viper.New()

	// Set configuration file details
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../")
	v.AddConfigPath("../../")

	// Set default values
	setDefaults(v)

	// Enable environment variable support
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Try to read config file
	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("Config file not found (%v), using defaults and environment variables\n", err)
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	// Handle nested JSON structure from config.json
	if v.IsSet("app") {
		flattenNestedConfig(v)
	}

	var config models.Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Parse JWT expiration if it's a string
	if v.IsSet("jwt.expires_in") {
		expiresStr := v.GetString("jwt.expires_in")
		if expiresStr != "" {
			if expires, err := time.ParseDuration(expiresStr); err != nil {
				return nil, fmt.Errorf("invalid JWT expires_in format: %w", err)
			} else {
				config.JWTExpiresIn = expires
			}
		}
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Application defaults
	v.SetDefault("app_name", "Sandbay Backend")
	v.SetDefault("app_version", "1.0.0")
	v.SetDefault("app_env", "development")
	v.SetDefault("app_host", "0.0.0.0")
	v.SetDefault("app_port", "8080")

	// JWT defaults
	v.SetDefault("jwt_secret", "your-super-secret-jwt-key-change-this-in-production")
	v.SetDefault("jwt_expires_in", 30*time.Minute)

	// AWS defaults
	v.SetDefault("aws_region", "us-east-1")
	v.SetDefault("aws_access_key_id", "")
	v.SetDefault("aws_secret_access_key", "")
	v.SetDefault("dynamodb_endpoint", "")
	v.SetDefault("dynamodb_table_prefix", "dev")

	// Sandbox provider defaults
	v.SetDefault("provider_binary", "sandbayd")
	v.SetDefault("provider_exec_timeout", 30*time.Second)
	v.SetDefault("provider_start_timeout", 60*time.Second)
	v.SetDefault("provider_start_interval", 2*time.Second)

	// Restart orchestration defaults
	v.SetDefault("restart_concurrency", 4)
	v.SetDefault("restart_output_limit", 500)
	v.SetDefault("services", []map[string]interface{}{
		{"name": "web", "restart_command": "supervisorctl restart web"},
		{"name": "api", "restart_command": "supervisorctl restart api"},
		{"name": "db", "restart_command": "supervisorctl restart db"},
	})

	// GitHub CLI defaults
	v.SetDefault("github_cli_path", "gh")
	v.SetDefault("github_list_limit", 100)
	v.SetDefault("github_list_timeout", 30*time.Second)

	// Reaper defaults
	v.SetDefault("reaper_enabled", true)
	v.SetDefault("reaper_idle_ttl", 2*time.Hour)
	v.SetDefault("reaper_schedule", "")

	// Logging defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	// CORS defaults
	v.SetDefault("cors_origins", []string{"*"})

	// Base Path default
	v.SetDefault("basePath", "/api/v1")

	// setup tables to create
	v.SetDefault("tables", []string{"workspaces", "users"})
}

// validate checks if all required configuration is provided
func validate(c *models.Config) error {
	if c.JWTSecret == "your-super-secret-jwt-key-change-this-in-production" && c.AppEnv == "production" {
		return fmt.Errorf("JWT_SECRET must be set in production environment")
	}

	if c.ProviderBinary == "" {
		return fmt.Errorf("provider_binary is required")
	}

	if len(c.Services) == 0 {
		return fmt.Errorf("at least one service definition is required")
	}
	for _, svc := range c.Services {
		if svc.Name == "" || svc.RestartCommand == "" {
			return fmt.Errorf("service definitions require both name and restart_command")
		}
	}

	if c.RestartConcurrency < 1 {
		return fmt.Errorf("restart_concurrency must be at least 1")
	}

	if c.RestartOutputLimit <= 0 {
		return fmt.Errorf("restart_output_limit must be positive")
	}

	// In production, we should have AWS credentials set
	if c.AppEnv == "production" && c.AWSAccessKeyID == "" {
		fmt.Println("No AWS credentials provided, assuming IAM role is used")
	}

	return nil
}

// flattenNestedConfig flattens the nested JSON structure to flat keys for easier mapping
func flattenNestedConfig(v *viper.Viper) {
	// App section
	if v.IsSet("app.name") {
		v.Set("app_name", v.GetString("app.name"))
	}
	if v.IsSet("app.version") {
		v.Set("app_version", v.GetString("app.version"))
	}
	if v.IsSet("app.env") {
		v.Set("app_env", v.GetString("app.env"))
	}
	if v.IsSet("app.host") {
		v.Set("app_host", v.GetString("app.host"))
	}
	if v.IsSet("app.port") {
		v.Set("app_port", v.GetString("app.port"))
	}

	// JWT section
	if v.IsSet("jwt.secret") {
		v.Set("jwt_secret", v.GetString("jwt.secret"))
	}

	// AWS section
	if v.IsSet("aws.region") {
		v.Set("aws_region", v.GetString("aws.region"))
	}
	if v.IsSet("aws.access_key_id") {
		v.Set("aws_access_key_id", v.GetString("aws.access_key_id"))
	}
	if v.IsSet("aws.secret_access_key") {
		v.Set("aws_secret_access_key", v.GetString("aws.secret_access_key"))
	}
	if v.IsSet("aws.dynamodb_endpoint") {
		v.Set("dynamodb_endpoint", v.GetString("aws.dynamodb_endpoint"))
	}
	if v.IsSet("aws.dynamodb_table_prefix") {
		v.Set("dynamodb_table_prefix", v.GetString("aws.dynamodb_table_prefix"))
	}

	// Provider section
	if v.IsSet("provider.binary") {
		v.Set("provider_binary", v.GetString("provider.binary"))
	}
	if v.IsSet("provider.exec_timeout") {
		v.Set("provider_exec_timeout", v.GetString("provider.exec_timeout"))
	}
	if v.IsSet("provider.start_timeout") {
		v.Set("provider_start_timeout", v.GetString("provider.start_timeout"))
	}
	if v.IsSet("provider.start_interval") {
		v.Set("provider_start_interval", v.GetString("provider.start_interval"))
	}

	// Restart section
	if v.IsSet("restart.concurrency") {
		v.Set("restart_concurrency", v.GetInt("restart.concurrency"))
	}
	if v.IsSet("restart.output_limit") {
		v.Set("restart_output_limit", v.GetInt("restart.output_limit"))
	}
	if v.IsSet("restart.services") {
		v.Set("services", v.Get("restart.services"))
	}

	// GitHub section
	if v.IsSet("github.cli_path") {
		v.Set("github_cli_path", v.GetString("github.cli_path"))
	}
	if v.IsSet("github.list_limit") {
		v.Set("github_list_limit", v.GetInt("github.list_limit"))
	}
	if v.IsSet("github.list_timeout") {
		v.Set("github_list_timeout", v.GetString("github.list_timeout"))
	}

	// Reaper section
	if v.IsSet("reaper.enabled") {
		v.Set("reaper_enabled", v.GetBool("reaper.enabled"))
	}
	if v.IsSet("reaper.idle_ttl") {
		v.Set("reaper_idle_ttl", v.GetString("reaper.idle_ttl"))
	}
	if v.IsSet("reaper.schedule") {
		v.Set("reaper_schedule", v.GetString("reaper.schedule"))
	}

	// Logging section
	if v.IsSet("logging.level") {
		v.Set("log_level", v.GetString("logging.level"))
	}
	if v.IsSet("logging.format") {
		v.Set("log_format", v.GetString("logging.format"))
	}

	// CORS section
	if v.IsSet("cors.origins") {
		v.Set("cors_origins", v.GetStringSlice("cors.origins"))
	}

	// Base Path
	if v.IsSet("basePath") {
		v.Set("basePath", v.GetString("basePath"))
	}
}

// PrintPrettyJSON takes any struct or map and prints it as pretty JSON
func PrintPrettyJSON(data interface{}) string {
	prettyJSON, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		fmt.Println("Failed to generate JSON:", err)
		return ""
	}
	return string(prettyJSON)
}

// GenerateUUID returns a new UUID string
func GenerateUUID() string {
	return uuid.New().String()
}

// Truncate caps s at limit characters, appending an ellipsis marker when cut
func Truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

// HashPassword hashes a plain text password using bcrypt.
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// CheckPassword compares a hashed password with a plain text password.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
