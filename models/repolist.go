package models

import "time"

// GitHubRepository is one entry from the GitHub listing utility
type GitHubRepository struct {
	Name          string    `json:"name"`
	FullName      string    `json:"full_name"`
	Description   string    `json:"description,omitempty"`
	URL           string    `json:"url"`
	DefaultBranch string    `json:"default_branch"`
	Visibility    string    `json:"visibility"`
	IsPrivate     bool      `json:"is_private"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RepositoryListing wraps a successful GitHub listing call
type RepositoryListing struct {
	Owner        string             `json:"owner"`
	Repositories []GitHubRepository `json:"repositories"`
	Count        int                `json:"count"`
}
