package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"kosmos-backend/internal/models"
	"kosmos-backend/internal/services"
	"kosmos-backend/internal/supabase"
)

// Kanban column order for board responses.
var boardColumns = []string{
	models.TaskStatusBacklog,
	models.TaskStatusTodo,
	models.TaskStatusInProgress,
	models.TaskStatusCompleted,
	models.TaskStatusBlocked,
}

type TasksHandler struct {
	dbClient    *supabase.DatabaseClient
	taskService *services.TaskService
}

func NewTasksHandler(dbClient *supabase.DatabaseClient, taskService *services.TaskService) *TasksHandler {
	return &TasksHandler{
		dbClient:    dbClient,
		taskService: taskService,
	}
}

func (h *TasksHandler) Create(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	var req models.CreateTaskRequest
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

	status := req.Status
	if status == "" {
		status = models.TaskStatusTodo
	}
	if !models.ValidTaskStatus(status) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid status"})
		return
	}
	if req.Priority != "" && !models.ValidTaskPriority(req.Priority) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid priority"})
		return
	}

	task := &models.Task{
		ID:          uuid.New(),
		UserID:      userID,
		WorkspaceID: workspaceID,
		Title:       req.Title,
		Status:      status,
	}
	if req.Description != "" {
		task.Description = sql.NullString{String: req.Description, Valid: true}
	}
	if req.Priority != "" {
		task.Priority = sql.NullString{String: req.Priority, Valid: true}
	}
	if req.DueDate != nil {
		task.DueDate = sql.NullTime{Time: *req.DueDate, Valid: true}
	}
	if req.TaskTypeID != "" {
		taskTypeID, err := uuid.Parse(req.TaskTypeID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid task type id"})
			return
		}
		task.TaskTypeID = uuid.NullUUID{UUID: taskTypeID, Valid: true}
	}

	created, err := h.dbClient.CreateTask(task)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create task",
			Message: err.Error(),
		})
		return
	}

	if len(req.TagIDs) > 0 {
		tagIDs, err := parseUUIDs(req.TagIDs)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid tag id"})
			return
		}
		if err := h.dbClient.SetTaskTags(created.ID, tagIDs); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "failed to set task tags",
				Message: err.Error(),
			})
			return
		}
		tags, err := h.dbClient.GetTaskTags(created.ID)
		if err == nil {
			created.Tags = tags
		}
	}

	c.JSON(http.StatusCreated, taskResponse(created))
}

// List returns the workspace's tasks, either flat or grouped into kanban
// columns when board=true.
func (h *TasksHandler) List(c *gin.Context) {
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

	tasks, err := h.dbClient.ListTasks(workspaceID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list tasks",
			Message: err.Error(),
		})
		return
	}

	if c.Query("board") == "true" {
		c.JSON(http.StatusOK, boardResponse(tasks))
		return
	}

	responses := make([]models.TaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = taskResponse(&tasks[i])
	}
	c.JSON(http.StatusOK, models.TaskListResponse{Tasks: responses})
}

func (h *TasksHandler) Get(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	taskID, err := parseIDParam(c, "task_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	task, err := h.dbClient.GetTask(taskID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "task not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, taskResponse(task))
}

func (h *TasksHandler) Update(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	taskID, err := parseIDParam(c, "task_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	var req models.UpdateTaskRequest
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
	if req.Priority != nil && *req.Priority != "" && !models.ValidTaskPriority(*req.Priority) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid priority"})
		return
	}

	var taskTypeID uuid.NullUUID
	if req.TaskTypeID != nil && *req.TaskTypeID != "" {
		parsed, err := uuid.Parse(*req.TaskTypeID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid task type id"})
			return
		}
		taskTypeID = uuid.NullUUID{UUID: parsed, Valid: true}
	}

	task, err := h.dbClient.UpdateTask(taskID, userID, &req, taskTypeID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "task not found",
			Message: err.Error(),
		})
		return
	}

	if req.TagIDs != nil {
		tagIDs, err := parseUUIDs(req.TagIDs)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid tag id"})
			return
		}
		if err := h.dbClient.SetTaskTags(task.ID, tagIDs); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "failed to set task tags",
				Message: err.Error(),
			})
			return
		}
	}
	tags, err := h.dbClient.GetTaskTags(task.ID)
	if err == nil {
		task.Tags = tags
	}

	c.JSON(http.StatusOK, taskResponse(task))
}

// UpdateStatus godoc
// @Summary     Set a task's status
// @Description Writes the given status unconditionally after validating it is a declared status value. Ordered workflow rules apply only to swipe and quick-move in the UI.
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       task_id path string true "Task ID (UUID)"
// @Param       request body models.UpdateTaskStatusRequest true "Target status"
// @Success     200 {object} models.TaskResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /tasks/{task_id}/status [patch]
func (h *TasksHandler) UpdateStatus(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	taskID, err := parseIDParam(c, "task_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	var req models.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	if !models.ValidTaskStatus(req.Status) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid status"})
		return
	}

	task, err := h.dbClient.UpdateTaskStatus(taskID, userID, req.Status)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "task not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, taskResponse(task))
}

// Move godoc
// @Summary     Quick-move a task
// @Description Advances or reverts the task by exactly one ordered workflow step. At a boundary the task is returned unchanged.
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       task_id path string true "Task ID (UUID)"
// @Param       request body models.MoveTaskRequest true "Move direction (next or previous)"
// @Success     200 {object} models.TaskResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /tasks/{task_id}/move [post]
func (h *TasksHandler) Move(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	taskID, err := parseIDParam(c, "task_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	var req models.MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}
	if req.Direction != "next" && req.Direction != "previous" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "direction must be next or previous"})
		return
	}

	task, _, err := h.taskService.QuickMove(taskID, userID, req.Direction)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "task not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, taskResponse(task))
}

func (h *TasksHandler) Delete(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	taskID, err := parseIDParam(c, "task_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.dbClient.DeleteTask(taskID, userID); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "task not found",
			Message: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

func parseUUIDs(ids []string) ([]uuid.UUID, error) {
	parsed := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		u, err := uuid.Parse(id)
		if err != nil {
			return nil, err
		}
		parsed[i] = u
	}
	return parsed, nil
}

func taskResponse(task *models.Task) models.TaskResponse {
	resp := models.TaskResponse{
		ID:          task.ID.String(),
		WorkspaceID: task.WorkspaceID.String(),
		Title:       task.Title,
		Status:      task.Status,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
	if task.Description.Valid {
		resp.Description = task.Description.String
	}
	if task.Priority.Valid {
		resp.Priority = task.Priority.String
	}
	if task.DueDate.Valid {
		due := task.DueDate.Time
		resp.DueDate = &due
	}
	if task.TaskTypeID.Valid {
		resp.TaskTypeID = task.TaskTypeID.UUID.String()
	}
	for _, tag := range task.Tags {
		resp.Tags = append(resp.Tags, tagResponse(&tag))
	}
	return resp
}

func boardResponse(tasks []models.Task) models.BoardResponse {
	grouped := make(map[string][]models.TaskResponse)
	for i := range tasks {
		grouped[tasks[i].Status] = append(grouped[tasks[i].Status], taskResponse(&tasks[i]))
	}

	columns := make([]models.BoardColumn, 0, len(boardColumns))
	for _, status := range boardColumns {
		columns = append(columns, models.BoardColumn{
			Status: status,
			Tasks:  grouped[status],
		})
	}
	// Statuses outside the standard columns still show up at the end.
	for _, status := range []string{models.TaskStatusClosed, models.TaskStatusCancelled} {
		if len(grouped[status]) > 0 {
			columns = append(columns, models.BoardColumn{Status: status, Tasks: grouped[status]})
		}
	}
	return models.BoardResponse{Columns: columns}
}
