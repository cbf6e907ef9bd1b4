package taskflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"kosmos-backend/internal/models"
	"kosmos-backend/internal/taskflow"
)

func TestClampOffset_Todo(t *testing.T) {
	// Rightward only, up to two forward segments.
	assert.Equal(t, 0.0, taskflow.ClampOffset(models.TaskStatusTodo, -50))
	assert.Equal(t, 100.0, taskflow.ClampOffset(models.TaskStatusTodo, 100))
	assert.Equal(t, 260.0, taskflow.ClampOffset(models.TaskStatusTodo, 400))
}

func TestClampOffset_InProgress(t *testing.T) {
	assert.Equal(t, -140.0, taskflow.ClampOffset(models.TaskStatusInProgress, -300))
	assert.Equal(t, -100.0, taskflow.ClampOffset(models.TaskStatusInProgress, -100))
	assert.Equal(t, 130.0, taskflow.ClampOffset(models.TaskStatusInProgress, 200))
}

func TestClampOffset_Completed(t *testing.T) {
	// Leftward only.
	assert.Equal(t, 0.0, taskflow.ClampOffset(models.TaskStatusCompleted, 80))
	assert.Equal(t, -140.0, taskflow.ClampOffset(models.TaskStatusCompleted, -500))
}

func TestClampOffset_NonSwipeable(t *testing.T) {
	assert.Equal(t, 0.0, taskflow.ClampOffset(models.TaskStatusBlocked, 200))
	assert.Equal(t, 0.0, taskflow.ClampOffset(models.TaskStatusBacklog, -200))
}

func TestPreviewTarget_Todo(t *testing.T) {
	target, ok := taskflow.PreviewTarget(models.TaskStatusTodo, 80)
	assert.True(t, ok)
	assert.Equal(t, models.TaskStatusInProgress, target)

	// Past the first segment the preview switches to the second target.
	target, ok = taskflow.PreviewTarget(models.TaskStatusTodo, 180)
	assert.True(t, ok)
	assert.Equal(t, models.TaskStatusCompleted, target)

	_, ok = taskflow.PreviewTarget(models.TaskStatusTodo, 0)
	assert.False(t, ok)
}

func TestPreviewTarget_InProgress(t *testing.T) {
	target, ok := taskflow.PreviewTarget(models.TaskStatusInProgress, 60)
	assert.True(t, ok)
	assert.Equal(t, models.TaskStatusCompleted, target)

	target, ok = taskflow.PreviewTarget(models.TaskStatusInProgress, -60)
	assert.True(t, ok)
	assert.Equal(t, models.TaskStatusTodo, target)
}

func TestPreviewTarget_Completed(t *testing.T) {
	target, ok := taskflow.PreviewTarget(models.TaskStatusCompleted, -90)
	assert.True(t, ok)
	assert.Equal(t, models.TaskStatusInProgress, target)

	// Rightward drags on a completed task point at nothing.
	_, ok = taskflow.PreviewTarget(models.TaskStatusCompleted, 90)
	assert.False(t, ok)
}

func TestReleaseTarget_TodoShortDragSnapsBack(t *testing.T) {
	_, ok := taskflow.ReleaseTarget(models.TaskStatusTodo, 129)
	assert.False(t, ok)
}

func TestReleaseTarget_TodoCommitsInProgress(t *testing.T) {
	target, ok := taskflow.ReleaseTarget(models.TaskStatusTodo, 130)
	assert.True(t, ok)
	assert.Equal(t, models.TaskStatusInProgress, target)

	target, ok = taskflow.ReleaseTarget(models.TaskStatusTodo, 259)
	assert.True(t, ok)
	assert.Equal(t, models.TaskStatusInProgress, target)
}

func TestReleaseTarget_TodoCommitsCompletedAtFullDrag(t *testing.T) {
	target, ok := taskflow.ReleaseTarget(models.TaskStatusTodo, 260)
	assert.True(t, ok)
	assert.Equal(t, models.TaskStatusCompleted, target)

	// Overshoot is clamped, not rejected.
	target, ok = taskflow.ReleaseTarget(models.TaskStatusTodo, 1000)
	assert.True(t, ok)
	assert.Equal(t, models.TaskStatusCompleted, target)
}

func TestReleaseTarget_InProgress(t *testing.T) {
	target, ok := taskflow.ReleaseTarget(models.TaskStatusInProgress, 130)
	assert.True(t, ok)
	assert.Equal(t, models.TaskStatusCompleted, target)

	target, ok = taskflow.ReleaseTarget(models.TaskStatusInProgress, -140)
	assert.True(t, ok)
	assert.Equal(t, models.TaskStatusTodo, target)

	_, ok = taskflow.ReleaseTarget(models.TaskStatusInProgress, -139)
	assert.False(t, ok)

	_, ok = taskflow.ReleaseTarget(models.TaskStatusInProgress, 100)
	assert.False(t, ok)
}

func TestReleaseTarget_Completed(t *testing.T) {
	target, ok := taskflow.ReleaseTarget(models.TaskStatusCompleted, -140)
	assert.True(t, ok)
	assert.Equal(t, models.TaskStatusInProgress, target)

	_, ok = taskflow.ReleaseTarget(models.TaskStatusCompleted, -100)
	assert.False(t, ok)
}

func TestReleaseTarget_NonSwipeable(t *testing.T) {
	_, ok := taskflow.ReleaseTarget(models.TaskStatusBlocked, 500)
	assert.False(t, ok)

	_, ok = taskflow.ReleaseTarget(models.TaskStatusCancelled, -500)
	assert.False(t, ok)
}
