package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Workspace scopes tasks, notes, tags, task types and sermon notes to one
// user. Every one of those records belongs to exactly one workspace.
type Workspace struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Color     string
	Icon      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Note struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	WorkspaceID uuid.UUID
	Title       string
	Body        sql.NullString
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Post struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Slug        string
	Body        sql.NullString
	Published   bool
	PublishedAt sql.NullTime
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PushSubscription is one durable Web Push subscription per user and
// endpoint, surviving process restarts.
type PushSubscription struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Endpoint  string
	P256DH    string
	Auth      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
