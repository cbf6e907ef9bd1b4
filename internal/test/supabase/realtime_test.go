package supabase_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"kosmos-backend/internal/supabase"
)

func TestProcessingStartedPayload(t *testing.T) {
	noteID := uuid.New()
	payload := supabase.ProcessingStartedPayload(noteID, 3)

	assert.Equal(t, noteID.String(), payload["sermon_note_id"])
	assert.Equal(t, "PROCESSING", payload["status"])
	assert.Equal(t, 3, payload["image_count"])
}

func TestProcessingCompletedPayload(t *testing.T) {
	noteID := uuid.New()
	payload := supabase.ProcessingCompletedPayload(noteID)

	assert.Equal(t, noteID.String(), payload["sermon_note_id"])
	assert.Equal(t, "COMPLETED", payload["status"])
}

func TestProcessingFailedPayload(t *testing.T) {
	noteID := uuid.New()
	payload := supabase.ProcessingFailedPayload(noteID, "no images attached")

	assert.Equal(t, noteID.String(), payload["sermon_note_id"])
	assert.Equal(t, "FAILED", payload["status"])
	assert.Equal(t, "no images attached", payload["error"])
}

func TestStoragePathFormat(t *testing.T) {
	userID := uuid.New()
	uploadID := uuid.New()

	expectedPath := "users/" + userID.String() + "/sermon-notes/" + uploadID.String() + ".jpg"

	// Verify path format
	assert.Contains(t, expectedPath, "users/")
	assert.Contains(t, expectedPath, "sermon-notes/")
	assert.Contains(t, expectedPath, ".jpg")
}
