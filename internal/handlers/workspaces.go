package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"kosmos-backend/internal/models"
	"kosmos-backend/internal/services"
	"kosmos-backend/internal/supabase"
)

type WorkspacesHandler struct {
	dbClient    *supabase.DatabaseClient
	taskService *services.TaskService
}

func NewWorkspacesHandler(dbClient *supabase.DatabaseClient, taskService *services.TaskService) *WorkspacesHandler {
	return &WorkspacesHandler{
		dbClient:    dbClient,
		taskService: taskService,
	}
}

func (h *WorkspacesHandler) Create(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	var req models.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}
	if len(req.Name) > maxTitleLength {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "name exceeds 100 characters"})
		return
	}

	ws, err := h.dbClient.CreateWorkspace(userID, req.Name, req.Color, req.Icon)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create workspace",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, workspaceResponse(ws))
}

func (h *WorkspacesHandler) List(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	workspaces, err := h.dbClient.ListWorkspaces(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list workspaces",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.WorkspaceResponse, len(workspaces))
	for i := range workspaces {
		responses[i] = workspaceResponse(&workspaces[i])
	}
	c.JSON(http.StatusOK, models.WorkspaceListResponse{Workspaces: responses})
}

func (h *WorkspacesHandler) Get(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	workspaceID, err := parseIDParam(c, "workspace_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	ws, err := h.dbClient.GetWorkspace(workspaceID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "workspace not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, workspaceResponse(ws))
}

func (h *WorkspacesHandler) Update(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	workspaceID, err := parseIDParam(c, "workspace_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	var req models.UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}
	if req.Name != nil && len(*req.Name) > maxTitleLength {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "name exceeds 100 characters"})
		return
	}

	ws, err := h.dbClient.UpdateWorkspace(workspaceID, userID, req.Name, req.Color, req.Icon)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "workspace not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, workspaceResponse(ws))
}

func (h *WorkspacesHandler) Delete(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	workspaceID, err := parseIDParam(c, "workspace_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.dbClient.DeleteWorkspace(workspaceID, userID); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "workspace not found",
			Message: err.Error(),
		})
		return
	}
	h.taskService.InvalidateWorkspace(workspaceID, userID)

	c.Status(http.StatusNoContent)
}

func workspaceResponse(ws *models.Workspace) models.WorkspaceResponse {
	return models.WorkspaceResponse{
		ID:        ws.ID.String(),
		Name:      ws.Name,
		Color:     ws.Color,
		Icon:      ws.Icon,
		CreatedAt: ws.CreatedAt,
		UpdatedAt: ws.UpdatedAt,
	}
}
