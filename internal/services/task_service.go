package services

import (
	"fmt"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"kosmos-backend/internal/models"
	"kosmos-backend/internal/supabase"
	"kosmos-backend/internal/taskflow"
)

const workspaceCacheSize = 512

// TaskService wraps task reads and workflow moves. Workspace ownership
// checks are cached, since every task operation repeats the same lookup.
type TaskService struct {
	dbClient       *supabase.DatabaseClient
	workspaceCache *lru.Cache[string, struct{}]
}

func NewTaskService(dbClient *supabase.DatabaseClient) (*TaskService, error) {
	cache, err := lru.New[string, struct{}](workspaceCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace cache: %w", err)
	}

	return &TaskService{
		dbClient:       dbClient,
		workspaceCache: cache,
	}, nil
}

// VerifyWorkspace confirms the workspace exists and belongs to the user.
func (s *TaskService) VerifyWorkspace(workspaceID, userID uuid.UUID) error {
	key := userID.String() + "|" + workspaceID.String()
	if _, ok := s.workspaceCache.Get(key); ok {
		return nil
	}

	if _, err := s.dbClient.GetWorkspace(workspaceID, userID); err != nil {
		return err
	}

	s.workspaceCache.Add(key, struct{}{})
	return nil
}

// InvalidateWorkspace drops a cached ownership entry after deletion.
func (s *TaskService) InvalidateWorkspace(workspaceID, userID uuid.UUID) {
	s.workspaceCache.Remove(userID.String() + "|" + workspaceID.String())
}

// QuickMove advances or reverts a task by exactly one ordered workflow
// step. At a workflow boundary (or for a non-workflow status) the move is a
// no-op and the task is returned unchanged.
func (s *TaskService) QuickMove(taskID, userID uuid.UUID, direction string) (*models.Task, bool, error) {
	task, err := s.dbClient.GetTask(taskID, userID)
	if err != nil {
		return nil, false, err
	}

	var target string
	var ok bool
	switch direction {
	case "next":
		target, ok = taskflow.NextStatus(task.Status)
	case "previous":
		target, ok = taskflow.PreviousStatus(task.Status)
	default:
		return nil, false, fmt.Errorf("invalid direction %q", direction)
	}

	if !ok {
		return task, false, nil
	}

	updated, err := s.dbClient.UpdateTaskStatus(taskID, userID, target)
	if err != nil {
		return nil, false, err
	}
	updated.Tags = task.Tags
	return updated, true, nil
}
