package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"kosmos-backend/internal/models"
	"kosmos-backend/internal/services"
	"kosmos-backend/internal/supabase"
)

type SermonNotesHandler struct {
	dbClient      *supabase.DatabaseClient
	sermonService *services.SermonService
	taskService   *services.TaskService
}

func NewSermonNotesHandler(dbClient *supabase.DatabaseClient, sermonService *services.SermonService, taskService *services.TaskService) *SermonNotesHandler {
	return &SermonNotesHandler{
		dbClient:      dbClient,
		sermonService: sermonService,
		taskService:   taskService,
	}
}

// Create godoc
// @Summary     Create a sermon note
// @Description Creates a sermon note record. When an upload id is given the upload is claimed and background OCR processing starts; the record is returned immediately with status UPLOADED.
// @Tags        sermon-notes
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.CreateSermonNoteRequest true "Sermon note"
// @Success     201 {object} models.SermonNoteResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /sermon-notes [post]
func (h *SermonNotesHandler) Create(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	var req models.CreateSermonNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	workspaceID, err := uuid.Parse(req.WorkspaceID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid workspace id"})
		return
	}
	if err := h.taskService.VerifyWorkspace(workspaceID, userID); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "workspace not found",
			Message: err.Error(),
		})
		return
	}

	var uploadID uuid.UUID
	hasUpload := req.UploadID != ""
	if hasUpload {
		uploadID, err = uuid.Parse(req.UploadID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid upload id"})
			return
		}
	}

	title := req.Title
	if title == "" {
		if hasUpload {
			title = fmt.Sprintf("Sermon %s", uploadID.String()[:8])
		} else {
			title = fmt.Sprintf("Sermon %s", time.Now().Format("2006-01-02 15:04"))
		}
	}
	if len(title) > maxTitleLength {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "title exceeds 100 characters"})
		return
	}

	note := &models.SermonNote{
		ID:          uuid.New(),
		UserID:      userID,
		WorkspaceID: workspaceID,
		Title:       title,
	}
	created, err := h.dbClient.CreateSermonNote(note)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create sermon note",
			Message: err.Error(),
		})
		return
	}

	if hasUpload {
		if _, err := h.dbClient.ClaimImage(uploadID, userID, models.ImageEntitySermonNote, created.ID); err != nil {
			// A failed claim must not leave an imageless note behind.
			if delErr := h.dbClient.DeleteSermonNote(created.ID, userID); delErr != nil {
				slog.Error("Failed to remove sermon note after claim failure",
					"sermonNoteId", created.ID.String(), "error", delErr)
			}
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "upload not found or already used",
				Message: err.Error(),
			})
			return
		}

		// Fire and forget: the create response does not wait for OCR. The
		// run logs its own failure; clients poll for the terminal status.
		go func(noteID uuid.UUID) {
			if err := h.sermonService.Process(context.Background(), noteID); err != nil {
				slog.Error("Background sermon processing failed", "sermonNoteId", noteID.String(), "error", err)
			}
		}(created.ID)
	}

	c.JSON(http.StatusCreated, sermonNoteResponse(created))
}

// Get godoc
// @Summary     Get a sermon note
// @Description Returns the sermon note including its processing status, OCR text and markdown. Clients poll this while status is PROCESSING.
// @Tags        sermon-notes
// @Produce     json
// @Security    Bearer
// @Param       sermon_note_id path string true "Sermon note ID (UUID)"
// @Success     200 {object} models.SermonNoteResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /sermon-notes/{sermon_note_id} [get]
func (h *SermonNotesHandler) Get(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	noteID, err := parseIDParam(c, "sermon_note_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	note, err := h.dbClient.GetSermonNote(noteID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "sermon note not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, sermonNoteResponse(note))
}

func (h *SermonNotesHandler) List(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	workspaceID, err := uuid.Parse(c.Query("workspace_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid workspace id"})
		return
	}

	notes, err := h.dbClient.ListSermonNotes(workspaceID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list sermon notes",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.SermonNoteResponse, len(notes))
	for i := range notes {
		responses[i] = sermonNoteResponse(&notes[i])
	}

	c.JSON(http.StatusOK, models.SermonNoteListResponse{SermonNotes: responses})
}

func sermonNoteResponse(note *models.SermonNote) models.SermonNoteResponse {
	resp := models.SermonNoteResponse{
		ID:          note.ID.String(),
		WorkspaceID: note.WorkspaceID.String(),
		Title:       note.Title,
		Status:      note.Status,
		CreatedAt:   note.CreatedAt,
		UpdatedAt:   note.UpdatedAt,
	}
	if note.OCRText.Valid {
		resp.OCRText = note.OCRText.String
	}
	if note.Markdown.Valid {
		resp.Markdown = note.Markdown.String
	}
	return resp
}
