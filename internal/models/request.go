package models

import "time"

type CreateWorkspaceRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color,omitempty" example:"#7c3aed"`
	Icon  string `json:"icon,omitempty" example:"rocket"`
}

type UpdateWorkspaceRequest struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
	Icon  *string `json:"icon,omitempty"`
}

type CreateTaskRequest struct {
	WorkspaceID string     `json:"workspace_id" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status,omitempty" example:"TODO"`
	Priority    string     `json:"priority,omitempty" example:"MEDIUM"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	TaskTypeID  string     `json:"task_type_id,omitempty"`
	TagIDs      []string   `json:"tag_ids,omitempty"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	TaskTypeID  *string    `json:"task_type_id,omitempty"`
	TagIDs      []string   `json:"tag_ids,omitempty"`
}

// UpdateTaskStatusRequest writes the given status unconditionally; any
// declared status value is accepted regardless of the current one.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required" example:"IN_PROGRESS"`
}

// MoveTaskRequest advances or reverts a task by exactly one ordered
// workflow step (quick-move).
type MoveTaskRequest struct {
	Direction string `json:"direction" binding:"required" example:"next"`
}

type CreateTagRequest struct {
	WorkspaceID string `json:"workspace_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Color       string `json:"color,omitempty"`
}

type UpdateTagRequest struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}

type CreateTaskTypeRequest struct {
	WorkspaceID string `json:"workspace_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Icon        string `json:"icon,omitempty"`
}

type CreateNoteRequest struct {
	WorkspaceID string `json:"workspace_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Body        string `json:"body,omitempty"`
}

type UpdateNoteRequest struct {
	Title *string `json:"title,omitempty"`
	Body  *string `json:"body,omitempty"`
}

type CreatePostRequest struct {
	Title string `json:"title" binding:"required"`
	Slug  string `json:"slug,omitempty"`
	Body  string `json:"body,omitempty"`
}

type UpdatePostRequest struct {
	Title     *string `json:"title,omitempty"`
	Slug      *string `json:"slug,omitempty"`
	Body      *string `json:"body,omitempty"`
	Published *bool   `json:"published,omitempty"`
}

type CreateSermonNoteRequest struct {
	WorkspaceID string `json:"workspace_id" binding:"required"`
	Title       string `json:"title,omitempty"`
	UploadID    string `json:"upload_id,omitempty"`
}

type SubscriptionKeys struct {
	P256DH string `json:"p256dh" binding:"required"`
	Auth   string `json:"auth" binding:"required"`
}

type SaveSubscriptionRequest struct {
	Endpoint string           `json:"endpoint" binding:"required"`
	Keys     SubscriptionKeys `json:"keys" binding:"required"`
}

type DeleteSubscriptionRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
}
