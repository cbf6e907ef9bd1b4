// Package taskflow implements the ordered task status workflow: the
// TODO -> IN_PROGRESS -> COMPLETED progression behind swipe gestures and
// quick-move controls, and the optimistic update bookkeeping around it.
package taskflow

import "kosmos-backend/internal/models"

// workflowOrder is the swipeable subset in workflow order. Statuses outside
// it are reachable only through direct selection.
var workflowOrder = []string{
	models.TaskStatusTodo,
	models.TaskStatusInProgress,
	models.TaskStatusCompleted,
}

// NextStatus returns the status one workflow step forward, or ok=false at
// the COMPLETED boundary and for non-workflow statuses.
func NextStatus(current string) (string, bool) {
	for i, status := range workflowOrder {
		if status == current && i+1 < len(workflowOrder) {
			return workflowOrder[i+1], true
		}
	}
	return "", false
}

// PreviousStatus returns the status one workflow step back, or ok=false at
// the TODO boundary and for non-workflow statuses.
func PreviousStatus(current string) (string, bool) {
	for i, status := range workflowOrder {
		if status == current && i > 0 {
			return workflowOrder[i-1], true
		}
	}
	return "", false
}

// IsSwipeable reports whether the status participates in the ordered
// gesture-driven workflow.
func IsSwipeable(status string) bool {
	for _, s := range workflowOrder {
		if s == status {
			return true
		}
	}
	return false
}
