package models

import "time"

// WorkspaceStatus represents the lifecycle status of a workspace record
type WorkspaceStatus string

const (
	WorkspaceStatusActive   WorkspaceStatus = "active"
	WorkspaceStatusStopped  WorkspaceStatus = "stopped"
	WorkspaceStatusArchived WorkspaceStatus = "archived"
)

// Workspace is the stored record binding a sandbox to its owner and the
// repositories deployed inside it
type Workspace struct {
	ID           string                 `json:"id" dynamodbav:"id" validate:"omitempty,uuid4"`
	SandboxID    string                 `json:"sandbox_id" dynamodbav:"sandbox_id" validate:"required,min=3,max=100"`
	Owner        string                 `json:"owner" dynamodbav:"owner" validate:"required"`
	RootDir      string                 `json:"root_dir" dynamodbav:"root_dir" validate:"required"`
	Repositories []RepositoryDescriptor `json:"repositories" dynamodbav:"repositories" validate:"dive"`
	Status       WorkspaceStatus        `json:"status" dynamodbav:"status" validate:"required,oneof=active stopped archived"`
	CreatedAt    time.Time              `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at" dynamodbav:"updated_at"`
	LastActiveAt time.Time              `json:"last_active_at" dynamodbav:"last_active_at"`
}

// RepositoryDescriptor identifies one repository deployed in a workspace.
// Path is relative to the workspace root directory.
type RepositoryDescriptor struct {
	Name string `json:"name" dynamodbav:"name" validate:"required,min=1,max=100"`
	Path string `json:"path" dynamodbav:"path" validate:"required"`
}

// WorkspaceHandle is the validated, request-scoped view of a workspace
// produced by the auth gate. Holding one means the caller owns the sandbox.
type WorkspaceHandle struct {
	WorkspaceID  string                 `json:"workspace_id"`
	SandboxID    string                 `json:"sandbox_id"`
	RootDir      string                 `json:"root_dir"`
	Owner        string                 `json:"owner"`
	Repositories []RepositoryDescriptor `json:"repositories"`
}

// CreateWorkspaceRequest registers a sandbox with its repositories
// @Description Workspace registration request
type CreateWorkspaceRequest struct {
	SandboxID    string                 `json:"sandbox_id" validate:"required,min=3,max=100" example:"sbx-4f9a1c"`
	RootDir      string                 `json:"root_dir" validate:"required,startswith=/" example:"/workspace"`
	Repositories []RepositoryDescriptor `json:"repositories" validate:"required,min=1,dive"`
}
