package taskflow

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MutationFunc issues the server-side status write for one task.
type MutationFunc func(taskID uuid.UUID, status string) error

// Coordinator applies a status change to the local task list immediately,
// then issues the server mutation. On mutation failure the pre-mutation
// status is restored from the snapshot, so local and server state never
// stay divergent.
type Coordinator struct {
	mu       sync.Mutex
	statuses map[uuid.UUID]string
	mutate   MutationFunc
}

func NewCoordinator(mutate MutationFunc) *Coordinator {
	return &Coordinator{
		statuses: make(map[uuid.UUID]string),
		mutate:   mutate,
	}
}

// Track registers a task and its current status in the local list.
func (c *Coordinator) Track(taskID uuid.UUID, status string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.statuses[taskID] = status
}

// Forget drops a task from the local list.
func (c *Coordinator) Forget(taskID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.statuses, taskID)
}

// Status returns the locally visible status of a tracked task.
func (c *Coordinator) Status(taskID uuid.UUID) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	status, ok := c.statuses[taskID]
	return status, ok
}

// CommitStatus optimistically applies the target status, then issues the
// mutation. A failed mutation deterministically rolls the local status back
// to the snapshot taken before the update.
func (c *Coordinator) CommitStatus(taskID uuid.UUID, target string) error {
	c.mu.Lock()
	prior, ok := c.statuses[taskID]
	if !ok {
		c.mu.Unlock()
		return fmt.Errorf("task %s is not tracked", taskID)
	}
	c.statuses[taskID] = target
	c.mu.Unlock()

	if err := c.mutate(taskID, target); err != nil {
		c.mu.Lock()
		c.statuses[taskID] = prior
		c.mu.Unlock()
		return fmt.Errorf("status mutation failed: %w", err)
	}

	return nil
}
