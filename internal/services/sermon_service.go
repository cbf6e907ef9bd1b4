package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"kosmos-backend/internal/models"
	"kosmos-backend/internal/supabase"
	"kosmos-backend/internal/vision"
)

// Signed URLs only need to outlive one vision request.
const signedURLTTLSeconds = 3600

// SermonService orchestrates sermon note processing: resolve images, sign
// access URLs, extract text, format markdown, persist the result and the
// status transitions around it.
type SermonService struct {
	dbClient       *supabase.DatabaseClient
	storageClient  *supabase.StorageClient
	visionClient   *vision.Client
	realtimeClient *supabase.RealtimeClient
}

func NewSermonService(
	dbClient *supabase.DatabaseClient,
	storageClient *supabase.StorageClient,
	visionClient *vision.Client,
	realtimeClient *supabase.RealtimeClient,
) *SermonService {
	return &SermonService{
		dbClient:       dbClient,
		storageClient:  storageClient,
		visionClient:   visionClient,
		realtimeClient: realtimeClient,
	}
}

// Process runs one orchestration of UPLOADED -> PROCESSING -> COMPLETED (or
// FAILED). The guarded status claim makes a duplicate invocation for the
// same note a no-op, so at most one run can own a record. Steps are strictly
// sequential; every external call is attempted exactly once.
func (s *SermonService) Process(ctx context.Context, noteID uuid.UUID) error {
	logCtx := slog.With("sermonNoteId", noteID.String())

	claimed, err := s.dbClient.ClaimSermonProcessing(noteID)
	if err != nil {
		return err
	}
	if !claimed {
		logCtx.Info("Sermon note already processing or terminal, skipping.")
		return nil
	}

	images, err := s.dbClient.GetImagesByEntity(models.ImageEntitySermonNote, noteID)
	if err != nil {
		return s.fail(logCtx, noteID, err)
	}
	if len(images) == 0 {
		return s.fail(logCtx, noteID, fmt.Errorf("sermon note has no images"))
	}

	s.realtimeClient.PublishSermonNoteEvent(noteID, "processing_started",
		supabase.ProcessingStartedPayload(noteID, len(images)))

	imageURLs := make([]string, len(images))
	for i, image := range images {
		url, err := s.storageClient.CreateSignedURL(image.StorageKey, signedURLTTLSeconds)
		if err != nil {
			return s.fail(logCtx, noteID, err)
		}
		imageURLs[i] = url
	}

	ocrText, err := s.visionClient.ExtractText(ctx, imageURLs)
	if err != nil {
		return s.fail(logCtx, noteID, err)
	}

	markdown, err := s.visionClient.FormatMarkdown(ctx, ocrText)
	if err != nil {
		return s.fail(logCtx, noteID, err)
	}

	if err := s.dbClient.CompleteSermonProcessing(noteID, ocrText, markdown); err != nil {
		return s.fail(logCtx, noteID, err)
	}

	s.realtimeClient.PublishSermonNoteEvent(noteID, "processing_completed",
		supabase.ProcessingCompletedPayload(noteID))
	logCtx.Info("Sermon note processing completed.")
	return nil
}

// fail records the terminal FAILED status, leaves the content columns
// untouched, and hands the original error back to the caller. The caller of
// a fire-and-forget run logs it; nothing retries.
func (s *SermonService) fail(logCtx *slog.Logger, noteID uuid.UUID, cause error) error {
	logCtx.Error("Sermon note processing failed", "error", cause)

	if err := s.dbClient.FailSermonProcessing(noteID); err != nil {
		logCtx.Error("Failed to persist FAILED status", "error", err)
	}
	s.realtimeClient.PublishSermonNoteEvent(noteID, "processing_failed",
		supabase.ProcessingFailedPayload(noteID, cause.Error()))
	return cause
}
