package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Sermon note processing statuses. COMPLETED and FAILED are terminal.
const (
	SermonStatusUploaded   = "UPLOADED"
	SermonStatusProcessing = "PROCESSING"
	SermonStatusCompleted  = "COMPLETED"
	SermonStatusFailed     = "FAILED"
)

// Entity kinds an Image row may be attached to.
const (
	ImageEntitySermonNote = "sermon_note"
	ImageEntityPost       = "post"
)

type SermonNote struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	WorkspaceID uuid.UUID
	Title       string
	Status      string
	OCRText     sql.NullString
	Markdown    sql.NullString
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsTerminal reports whether no further automatic status transition occurs.
func (s *SermonNote) IsTerminal() bool {
	return s.Status == SermonStatusCompleted || s.Status == SermonStatusFailed
}

// Image is attached to its owning record through the (EntityType, EntityID)
// pair rather than a typed foreign key, so one table serves every feature
// area that stores uploads.
type Image struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType string
	EntityID   uuid.UUID
	StorageKey string
	Filename   string
	MimeType   string
	FileSize   int64
	Width      sql.NullInt64
	Height     sql.NullInt64
	CreatedAt  time.Time
}
