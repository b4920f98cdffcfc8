package worker

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sandbay-backend/models"
	"time"
)

// StatusManager persists the outcome of the last sweep to a status file, so
// the admin API can report it and it survives process restarts.
type StatusManager struct {
	StatusFilePath string
}

// NewStatusManager creates a new status manager
func NewStatusManager(statusPath string) *StatusManager {
	return &StatusManager{
		StatusFilePath: statusPath,
	}
}

// SaveSweep writes the sweep result atomically through a temp file and
// rename. The end time is filled in for terminal states.
func (sm *StatusManager) SaveSweep(result *models.SweepResult) error {
	if err := os.MkdirAll(filepath.Dir(sm.StatusFilePath), 0755); err != nil {
		return fmt.Errorf("failed to create status directory: %w", err)
	}

	if result.EndTime == nil && (result.Status == models.ReaperStatusCompleted || result.Status == models.ReaperStatusFailed) {
		now := time.Now()
		result.EndTime = &now
		result.Duration = now.Sub(result.StartTime)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sweep result: %w", err)
	}

	tempFile := sm.StatusFilePath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp status file: %w", err)
	}

	if err := os.Rename(tempFile, sm.StatusFilePath); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename status file: %w", err)
	}

	return nil
}

// LoadSweep reads the persisted result of the most recent sweep
func (sm *StatusManager) LoadSweep() (*models.SweepResult, error) {
	data, err := os.ReadFile(sm.StatusFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read status file: %w", err)
	}

	var result models.SweepResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sweep result: %w", err)
	}

	return &result, nil
}

// LastSweepTime returns when the most recent sweep started
func (sm *StatusManager) LastSweepTime() (time.Time, error) {
	result, err := sm.LoadSweep()
	if err != nil {
		return time.Time{}, err
	}

	return result.StartTime, nil
}

// ResetStatus removes the status file (useful before forced re-runs)
func (sm *StatusManager) ResetStatus() error {
	return os.Remove(sm.StatusFilePath)
}
