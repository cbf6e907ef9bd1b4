package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"kosmos-backend/internal/models"
	"kosmos-backend/internal/services"
	"kosmos-backend/internal/supabase"
)

type NotesHandler struct {
	dbClient    *supabase.DatabaseClient
	taskService *services.TaskService
}

func NewNotesHandler(dbClient *supabase.DatabaseClient, taskService *services.TaskService) *NotesHandler {
	return &NotesHandler{
		dbClient:    dbClient,
		taskService: taskService,
	}
}

func (h *NotesHandler) Create(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	var req models.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}
	if len(req.Title) > maxTitleLength {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "title exceeds 100 characters"})
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

	note, err := h.dbClient.CreateNote(userID, workspaceID, req.Title, req.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create note",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, noteResponse(note))
}

func (h *NotesHandler) List(c *gin.Context) {
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

	notes, err := h.dbClient.ListNotes(workspaceID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list notes",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.NoteResponse, len(notes))
	for i := range notes {
		responses[i] = noteResponse(&notes[i])
	}
	c.JSON(http.StatusOK, models.NoteListResponse{Notes: responses})
}

func (h *NotesHandler) Get(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	noteID, err := parseIDParam(c, "note_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	note, err := h.dbClient.GetNote(noteID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "note not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, noteResponse(note))
}

func (h *NotesHandler) Update(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	noteID, err := parseIDParam(c, "note_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	var req models.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}
	if req.Title != nil && len(*req.Title) > maxTitleLength {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "title exceeds 100 characters"})
		return
	}

	note, err := h.dbClient.UpdateNote(noteID, userID, req.Title, req.Body)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "note not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, noteResponse(note))
}

func (h *NotesHandler) Delete(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	noteID, err := parseIDParam(c, "note_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.dbClient.DeleteNote(noteID, userID); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "note not found",
			Message: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

func noteResponse(note *models.Note) models.NoteResponse {
	resp := models.NoteResponse{
		ID:          note.ID.String(),
		WorkspaceID: note.WorkspaceID.String(),
		Title:       note.Title,
		CreatedAt:   note.CreatedAt,
		UpdatedAt:   note.UpdatedAt,
	}
	if note.Body.Valid {
		resp.Body = note.Body.String
	}
	return resp
}
