package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"kosmos-backend/internal/models"
	"kosmos-backend/internal/services"
	"kosmos-backend/internal/supabase"
)

type TagsHandler struct {
	dbClient    *supabase.DatabaseClient
	taskService *services.TaskService
}

func NewTagsHandler(dbClient *supabase.DatabaseClient, taskService *services.TaskService) *TagsHandler {
	return &TagsHandler{
		dbClient:    dbClient,
		taskService: taskService,
	}
}

func (h *TagsHandler) Create(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	var req models.CreateTagRequest
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

	tag, err := h.dbClient.CreateTag(userID, workspaceID, req.Name, req.Color)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create tag",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, tagResponse(tag))
}

func (h *TagsHandler) List(c *gin.Context) {
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

	tags, err := h.dbClient.ListTags(workspaceID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list tags",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.TagResponse, len(tags))
	for i := range tags {
		responses[i] = tagResponse(&tags[i])
	}
	c.JSON(http.StatusOK, models.TagListResponse{Tags: responses})
}

func (h *TagsHandler) Update(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	tagID, err := parseIDParam(c, "tag_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	var req models.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	tag, err := h.dbClient.UpdateTag(tagID, userID, req.Name, req.Color)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "tag not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, tagResponse(tag))
}

func (h *TagsHandler) Delete(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	tagID, err := parseIDParam(c, "tag_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.dbClient.DeleteTag(tagID, userID); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "tag not found",
			Message: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

func tagResponse(tag *models.Tag) models.TagResponse {
	return models.TagResponse{
		ID:          tag.ID.String(),
		WorkspaceID: tag.WorkspaceID.String(),
		Name:        tag.Name,
		Color:       tag.Color,
		CreatedAt:   tag.CreatedAt,
	}
}
