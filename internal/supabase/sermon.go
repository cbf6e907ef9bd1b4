package supabase

import (
	"fmt"

	"github.com/google/uuid"
	"kosmos-backend/internal/models"
)

func (d *DatabaseClient) CreateSermonNote(note *models.SermonNote) (*models.SermonNote, error) {
	var created models.SermonNote
	err := d.db.QueryRow(`
		INSERT INTO sermon_notes (id, user_id, workspace_id, title, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, workspace_id, title, status, ocr_text, markdown, created_at, updated_at
	`, note.ID, note.UserID, note.WorkspaceID, note.Title, models.SermonStatusUploaded).Scan(
		&created.ID, &created.UserID, &created.WorkspaceID, &created.Title, &created.Status,
		&created.OCRText, &created.Markdown, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sermon note: %w", err)
	}

	return &created, nil
}

func (d *DatabaseClient) GetSermonNote(noteID, userID uuid.UUID) (*models.SermonNote, error) {
	var note models.SermonNote
	err := d.db.QueryRow(`
		SELECT id, user_id, workspace_id, title, status, ocr_text, markdown, created_at, updated_at
		FROM sermon_notes
		WHERE id = $1 AND user_id = $2
	`, noteID, userID).Scan(
		&note.ID, &note.UserID, &note.WorkspaceID, &note.Title, &note.Status,
		&note.OCRText, &note.Markdown, &note.CreatedAt, &note.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get sermon note: %w", err)
	}

	return &note, nil
}

func (d *DatabaseClient) ListSermonNotes(workspaceID, userID uuid.UUID) ([]models.SermonNote, error) {
	rows, err := d.db.Query(`
		SELECT id, user_id, workspace_id, title, status, ocr_text, markdown, created_at, updated_at
		FROM sermon_notes
		WHERE workspace_id = $1 AND user_id = $2
		ORDER BY created_at DESC
	`, workspaceID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sermon notes: %w", err)
	}
	defer rows.Close()

	var notes []models.SermonNote
	for rows.Next() {
		var note models.SermonNote
		err := rows.Scan(
			&note.ID, &note.UserID, &note.WorkspaceID, &note.Title, &note.Status,
			&note.OCRText, &note.Markdown, &note.CreatedAt, &note.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sermon note: %w", err)
		}
		notes = append(notes, note)
	}

	return notes, nil
}

// DeleteSermonNote removes the record; attached images keep their storage
// objects and rows.
func (d *DatabaseClient) DeleteSermonNote(noteID, userID uuid.UUID) error {
	result, err := d.db.Exec(`
		DELETE FROM sermon_notes
		WHERE id = $1 AND user_id = $2
	`, noteID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete sermon note: %w", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("sermon note not found")
	}
	return nil
}

// ClaimSermonProcessing flips the note from UPLOADED to PROCESSING. The
// guarded WHERE clause is the idempotency key: a second invocation for the
// same note finds no row to update and reports false, so duplicate
// orchestration runs are rejected rather than racing.
func (d *DatabaseClient) ClaimSermonProcessing(noteID uuid.UUID) (bool, error) {
	result, err := d.db.Exec(`
		UPDATE sermon_notes
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`, models.SermonStatusProcessing, noteID, models.SermonStatusUploaded)
	if err != nil {
		return false, fmt.Errorf("failed to claim sermon note for processing: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected == 1, nil
}

// CompleteSermonProcessing persists the extracted text and formatted
// markdown and moves the note to its terminal COMPLETED status.
func (d *DatabaseClient) CompleteSermonProcessing(noteID uuid.UUID, ocrText, markdown string) error {
	result, err := d.db.Exec(`
		UPDATE sermon_notes
		SET status = $1, ocr_text = $2, markdown = $3, updated_at = NOW()
		WHERE id = $4 AND status = $5
	`, models.SermonStatusCompleted, ocrText, markdown, noteID, models.SermonStatusProcessing)
	if err != nil {
		return fmt.Errorf("failed to complete sermon note: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("sermon note %s is not in PROCESSING", noteID)
	}
	return nil
}

// FailSermonProcessing moves the note to FAILED. Content columns stay
// untouched so a failed note never carries partial output.
func (d *DatabaseClient) FailSermonProcessing(noteID uuid.UUID) error {
	result, err := d.db.Exec(`
		UPDATE sermon_notes
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`, models.SermonStatusFailed, noteID, models.SermonStatusProcessing)
	if err != nil {
		return fmt.Errorf("failed to mark sermon note failed: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("sermon note %s is not in PROCESSING", noteID)
	}
	return nil
}

func (d *DatabaseClient) CreateImage(image *models.Image) error {
	_, err := d.db.Exec(`
		INSERT INTO images (id, user_id, entity_type, entity_id, storage_key, filename, mime_type, file_size, width, height)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, image.ID, image.UserID, image.EntityType, image.EntityID, image.StorageKey,
		image.Filename, image.MimeType, image.FileSize, image.Width, image.Height)
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	return nil
}

// ClaimImage attaches a pending upload (entity id still zero) to its owning
// record. Returns an error if the upload does not exist, belongs to another
// user, or was already claimed.
func (d *DatabaseClient) ClaimImage(imageID, userID uuid.UUID, entityType string, entityID uuid.UUID) (*models.Image, error) {
	var image models.Image
	err := d.db.QueryRow(`
		UPDATE images
		SET entity_type = $1, entity_id = $2
		WHERE id = $3 AND user_id = $4 AND entity_id = $5
		RETURNING id, user_id, entity_type, entity_id, storage_key, filename, mime_type, file_size, width, height, created_at
	`, entityType, entityID, imageID, userID, uuid.Nil).Scan(
		&image.ID, &image.UserID, &image.EntityType, &image.EntityID, &image.StorageKey,
		&image.Filename, &image.MimeType, &image.FileSize, &image.Width, &image.Height, &image.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to claim upload: %w", err)
	}

	return &image, nil
}

// GetImagesByEntity returns the record's images ordered by creation time.
// Creation order is not necessarily logical reading order; the vision
// prompt is told to work that out.
func (d *DatabaseClient) GetImagesByEntity(entityType string, entityID uuid.UUID) ([]models.Image, error) {
	rows, err := d.db.Query(`
		SELECT id, user_id, entity_type, entity_id, storage_key, filename, mime_type, file_size, width, height, created_at
		FROM images
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at ASC
	`, entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to get images: %w", err)
	}
	defer rows.Close()

	var images []models.Image
	for rows.Next() {
		var image models.Image
		err := rows.Scan(
			&image.ID, &image.UserID, &image.EntityType, &image.EntityID, &image.StorageKey,
			&image.Filename, &image.MimeType, &image.FileSize, &image.Width, &image.Height, &image.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		images = append(images, image)
	}

	return images, nil
}

// UpsertPushSubscription stores one durable subscription row per user and
// endpoint, replacing the keys when the browser re-subscribes.
func (d *DatabaseClient) UpsertPushSubscription(userID uuid.UUID, endpoint, p256dh, auth string) (*models.PushSubscription, error) {
	var sub models.PushSubscription
	err := d.db.QueryRow(`
		INSERT INTO push_subscriptions (id, user_id, endpoint, p256dh, auth)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, endpoint)
		DO UPDATE SET p256dh = EXCLUDED.p256dh, auth = EXCLUDED.auth, updated_at = NOW()
		RETURNING id, user_id, endpoint, p256dh, auth, created_at, updated_at
	`, uuid.New(), userID, endpoint, p256dh, auth).Scan(
		&sub.ID, &sub.UserID, &sub.Endpoint, &sub.P256DH, &sub.Auth, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save push subscription: %w", err)
	}

	return &sub, nil
}

func (d *DatabaseClient) ListPushSubscriptions(userID uuid.UUID) ([]models.PushSubscription, error) {
	rows, err := d.db.Query(`
		SELECT id, user_id, endpoint, p256dh, auth, created_at, updated_at
		FROM push_subscriptions
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list push subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []models.PushSubscription
	for rows.Next() {
		var sub models.PushSubscription
		err := rows.Scan(&sub.ID, &sub.UserID, &sub.Endpoint, &sub.P256DH, &sub.Auth, &sub.CreatedAt, &sub.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan push subscription: %w", err)
		}
		subs = append(subs, sub)
	}

	return subs, nil
}

func (d *DatabaseClient) DeletePushSubscription(userID uuid.UUID, endpoint string) error {
	result, err := d.db.Exec(`
		DELETE FROM push_subscriptions
		WHERE user_id = $1 AND endpoint = $2
	`, userID, endpoint)
	if err != nil {
		return fmt.Errorf("failed to delete push subscription: %w", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("push subscription not found")
	}
	return nil
}
