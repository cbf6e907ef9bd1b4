package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"kosmos-backend/internal/models"
)

func TestValidTaskStatus(t *testing.T) {
	valid := []string{"BACKLOG", "TODO", "IN_PROGRESS", "COMPLETED", "BLOCKED", "CLOSED", "CANCELLED"}
	for _, s := range valid {
		assert.True(t, models.ValidTaskStatus(s), s)
	}

	assert.False(t, models.ValidTaskStatus("DONE"))
	assert.False(t, models.ValidTaskStatus("todo"))
	assert.False(t, models.ValidTaskStatus(""))
}

func TestValidTaskPriority(t *testing.T) {
	assert.True(t, models.ValidTaskPriority("LOW"))
	assert.True(t, models.ValidTaskPriority("MEDIUM"))
	assert.True(t, models.ValidTaskPriority("HIGH"))

	assert.False(t, models.ValidTaskPriority("URGENT"))
	assert.False(t, models.ValidTaskPriority(""))
}

func TestSermonNoteIsTerminal(t *testing.T) {
	note := &models.SermonNote{Status: models.SermonStatusUploaded}
	assert.False(t, note.IsTerminal())

	note.Status = models.SermonStatusProcessing
	assert.False(t, note.IsTerminal())

	note.Status = models.SermonStatusCompleted
	assert.True(t, note.IsTerminal())

	note.Status = models.SermonStatusFailed
	assert.True(t, note.IsTerminal())
}
