package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"kosmos-backend/internal/models"
	"kosmos-backend/internal/services"
	"kosmos-backend/internal/supabase"
)

type TaskTypesHandler struct {
	dbClient    *supabase.DatabaseClient
	taskService *services.TaskService
}

func NewTaskTypesHandler(dbClient *supabase.DatabaseClient, taskService *services.TaskService) *TaskTypesHandler {
	return &TaskTypesHandler{
		dbClient:    dbClient,
		taskService: taskService,
	}
}

func (h *TaskTypesHandler) Create(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	var req models.CreateTaskTypeRequest
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

	taskType, err := h.dbClient.CreateTaskType(userID, workspaceID, req.Name, req.Icon)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create task type",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, taskTypeResponse(taskType))
}

func (h *TaskTypesHandler) List(c *gin.Context) {
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

	taskTypes, err := h.dbClient.ListTaskTypes(workspaceID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list task types",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.TaskTypeResponse, len(taskTypes))
	for i := range taskTypes {
		responses[i] = taskTypeResponse(&taskTypes[i])
	}
	c.JSON(http.StatusOK, models.TaskTypeListResponse{TaskTypes: responses})
}

func (h *TaskTypesHandler) Delete(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	taskTypeID, err := parseIDParam(c, "task_type_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.dbClient.DeleteTaskType(taskTypeID, userID); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "task type not found",
			Message: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

func taskTypeResponse(tt *models.TaskType) models.TaskTypeResponse {
	return models.TaskTypeResponse{
		ID:          tt.ID.String(),
		WorkspaceID: tt.WorkspaceID.String(),
		Name:        tt.Name,
		Icon:        tt.Icon,
		CreatedAt:   tt.CreatedAt,
	}
}
