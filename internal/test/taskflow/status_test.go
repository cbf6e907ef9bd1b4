package taskflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"kosmos-backend/internal/models"
	"kosmos-backend/internal/taskflow"
)

func TestNextStatus(t *testing.T) {
	next, ok := taskflow.NextStatus(models.TaskStatusTodo)
	assert.True(t, ok)
	assert.Equal(t, models.TaskStatusInProgress, next)

	next, ok = taskflow.NextStatus(models.TaskStatusInProgress)
	assert.True(t, ok)
	assert.Equal(t, models.TaskStatusCompleted, next)
}

func TestNextStatus_CompletedIsTerminal(t *testing.T) {
	_, ok := taskflow.NextStatus(models.TaskStatusCompleted)
	assert.False(t, ok)
}

func TestNextStatus_NonWorkflowStatus(t *testing.T) {
	_, ok := taskflow.NextStatus(models.TaskStatusBacklog)
	assert.False(t, ok)

	_, ok = taskflow.NextStatus(models.TaskStatusBlocked)
	assert.False(t, ok)
}

func TestPreviousStatus(t *testing.T) {
	prev, ok := taskflow.PreviousStatus(models.TaskStatusCompleted)
	assert.True(t, ok)
	assert.Equal(t, models.TaskStatusInProgress, prev)

	prev, ok = taskflow.PreviousStatus(models.TaskStatusInProgress)
	assert.True(t, ok)
	assert.Equal(t, models.TaskStatusTodo, prev)
}

func TestPreviousStatus_TodoIsFirst(t *testing.T) {
	_, ok := taskflow.PreviousStatus(models.TaskStatusTodo)
	assert.False(t, ok)
}

func TestPreviousStatus_NonWorkflowStatus(t *testing.T) {
	_, ok := taskflow.PreviousStatus(models.TaskStatusCancelled)
	assert.False(t, ok)
}

func TestIsSwipeable(t *testing.T) {
	assert.True(t, taskflow.IsSwipeable(models.TaskStatusTodo))
	assert.True(t, taskflow.IsSwipeable(models.TaskStatusInProgress))
	assert.True(t, taskflow.IsSwipeable(models.TaskStatusCompleted))

	assert.False(t, taskflow.IsSwipeable(models.TaskStatusBacklog))
	assert.False(t, taskflow.IsSwipeable(models.TaskStatusBlocked))
	assert.False(t, taskflow.IsSwipeable(models.TaskStatusClosed))
	assert.False(t, taskflow.IsSwipeable(models.TaskStatusCancelled))
}
