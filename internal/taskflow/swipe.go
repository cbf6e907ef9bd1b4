package taskflow

import "kosmos-backend/internal/models"

// Gesture geometry in pixels. Fixed at build time, not configurable.
const (
	// RightCommitThreshold is the rightward drag distance that commits a
	// forward transition for a TODO task.
	RightCommitThreshold = 130.0

	// LeftCommitThreshold is the leftward drag distance that commits a
	// backward transition for a non-TODO task.
	LeftCommitThreshold = 140.0

	// rightSegmentWidth is the width of one forward preview segment. A TODO
	// task exposes two forward segments (IN_PROGRESS, then COMPLETED).
	rightSegmentWidth = 130.0
)

// ClampOffset limits the live drag offset to the status-specific range so
// the row cannot visually overshoot its last preview segment.
func ClampOffset(status string, offset float64) float64 {
	minOffset, maxOffset := offsetBounds(status)
	if offset < minOffset {
		return minOffset
	}
	if offset > maxOffset {
		return maxOffset
	}
	return offset
}

func offsetBounds(status string) (min, max float64) {
	switch status {
	case models.TaskStatusTodo:
		// Rightward only; two forward segments.
		return 0, 2 * rightSegmentWidth
	case models.TaskStatusInProgress:
		// Both directions, one target each.
		return -LeftCommitThreshold, rightSegmentWidth
	case models.TaskStatusCompleted:
		// Leftward only; only the adjacent target is offered.
		return -LeftCommitThreshold, 0
	default:
		// Non-workflow statuses ignore drags entirely.
		return 0, 0
	}
}

// PreviewTarget returns the status the drag currently points at, for
// rendering the drag-time hint. ok=false when the offset points at no valid
// target (wrong direction, or a non-swipeable status).
func PreviewTarget(status string, offset float64) (string, bool) {
	offset = ClampOffset(status, offset)

	switch status {
	case models.TaskStatusTodo:
		if offset <= 0 {
			return "", false
		}
		if offset > rightSegmentWidth {
			return models.TaskStatusCompleted, true
		}
		return models.TaskStatusInProgress, true
	case models.TaskStatusInProgress:
		if offset > 0 {
			return models.TaskStatusCompleted, true
		}
		if offset < 0 {
			return models.TaskStatusTodo, true
		}
		return "", false
	case models.TaskStatusCompleted:
		if offset < 0 {
			return models.TaskStatusInProgress, true
		}
		return "", false
	default:
		return "", false
	}
}

// ReleaseTarget decides what happens when the drag ends: the committed
// target status, or ok=false when the distance stayed below the commit
// threshold and the row snaps back with no transition.
func ReleaseTarget(status string, offset float64) (string, bool) {
	offset = ClampOffset(status, offset)

	switch status {
	case models.TaskStatusTodo:
		if offset >= 2*rightSegmentWidth {
			return models.TaskStatusCompleted, true
		}
		if offset >= RightCommitThreshold {
			return models.TaskStatusInProgress, true
		}
		return "", false
	case models.TaskStatusInProgress:
		if offset >= RightCommitThreshold {
			return models.TaskStatusCompleted, true
		}
		if offset <= -LeftCommitThreshold {
			return models.TaskStatusTodo, true
		}
		return "", false
	case models.TaskStatusCompleted:
		if offset <= -LeftCommitThreshold {
			return models.TaskStatusInProgress, true
		}
		return "", false
	default:
		return "", false
	}
}
