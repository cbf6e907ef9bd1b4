package taskflow_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"kosmos-backend/internal/models"
	"kosmos-backend/internal/taskflow"
)

func TestCommitStatus_AppliesBeforeMutation(t *testing.T) {
	taskID := uuid.New()
	var seenStatus string

	coord := taskflow.NewCoordinator(func(id uuid.UUID, status string) error {
		seenStatus = status
		return nil
	})
	coord.Track(taskID, models.TaskStatusTodo)

	err := coord.CommitStatus(taskID, models.TaskStatusInProgress)
	assert.NoError(t, err)
	assert.Equal(t, models.TaskStatusInProgress, seenStatus)

	status, ok := coord.Status(taskID)
	assert.True(t, ok)
	assert.Equal(t, models.TaskStatusInProgress, status)
}

func TestCommitStatus_RollsBackOnMutationFailure(t *testing.T) {
	taskID := uuid.New()

	coord := taskflow.NewCoordinator(func(id uuid.UUID, status string) error {
		return errors.New("server unavailable")
	})
	coord.Track(taskID, models.TaskStatusTodo)

	err := coord.CommitStatus(taskID, models.TaskStatusCompleted)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "server unavailable")

	// The local status must be back at its pre-mutation snapshot.
	status, ok := coord.Status(taskID)
	assert.True(t, ok)
	assert.Equal(t, models.TaskStatusTodo, status)
}

func TestCommitStatus_UntrackedTask(t *testing.T) {
	coord := taskflow.NewCoordinator(func(id uuid.UUID, status string) error {
		t.Fatal("mutation must not run for an untracked task")
		return nil
	})

	err := coord.CommitStatus(uuid.New(), models.TaskStatusCompleted)
	assert.Error(t, err)
}

func TestForget(t *testing.T) {
	taskID := uuid.New()
	coord := taskflow.NewCoordinator(func(id uuid.UUID, status string) error {
		return nil
	})

	coord.Track(taskID, models.TaskStatusInProgress)
	coord.Forget(taskID)

	_, ok := coord.Status(taskID)
	assert.False(t, ok)
}
