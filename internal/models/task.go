package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Task statuses. TODO, IN_PROGRESS and COMPLETED form the ordered workflow
// driven by swipe gestures and quick-move; the rest are reachable only
// through explicit selection.
const (
	TaskStatusBacklog    = "BACKLOG"
	TaskStatusTodo       = "TODO"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusCompleted  = "COMPLETED"
	TaskStatusBlocked    = "BLOCKED"
	TaskStatusClosed     = "CLOSED"
	TaskStatusCancelled  = "CANCELLED"
)

const (
	TaskPriorityLow    = "LOW"
	TaskPriorityMedium = "MEDIUM"
	TaskPriorityHigh   = "HIGH"
)

// ValidTaskStatus reports whether s is a declared status value.
func ValidTaskStatus(s string) bool {
	switch s {
	case TaskStatusBacklog, TaskStatusTodo, TaskStatusInProgress,
		TaskStatusCompleted, TaskStatusBlocked, TaskStatusClosed, TaskStatusCancelled:
		return true
	}
	return false
}

// ValidTaskPriority reports whether p is a declared priority value.
func ValidTaskPriority(p string) bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	WorkspaceID uuid.UUID
	Title       string
	Description sql.NullString
	Status      string
	Priority    sql.NullString
	DueDate     sql.NullTime
	TaskTypeID  uuid.NullUUID
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Populated by joined reads, not by the tasks table itself.
	Tags []Tag
}

type Tag struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	WorkspaceID uuid.UUID
	Name        string
	Color       string
	CreatedAt   time.Time
}

type TaskType struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	WorkspaceID uuid.UUID
	Name        string
	Icon        string
	CreatedAt   time.Time
}
