package supabase

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"kosmos-backend/internal/models"
)

func (d *DatabaseClient) CreateTask(task *models.Task) (*models.Task, error) {
	var created models.Task
	err := d.db.QueryRow(`
		INSERT INTO tasks (id, user_id, workspace_id, title, description, status, priority, due_date, task_type_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, user_id, workspace_id, title, description, status, priority, due_date, task_type_id, created_at, updated_at
	`, task.ID, task.UserID, task.WorkspaceID, task.Title, task.Description,
		task.Status, task.Priority, task.DueDate, task.TaskTypeID).Scan(
		&created.ID, &created.UserID, &created.WorkspaceID, &created.Title, &created.Description,
		&created.Status, &created.Priority, &created.DueDate, &created.TaskTypeID,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return &created, nil
}

func (d *DatabaseClient) GetTask(taskID, userID uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := d.db.QueryRow(`
		SELECT id, user_id, workspace_id, title, description, status, priority, due_date, task_type_id, created_at, updated_at
		FROM tasks
		WHERE id = $1 AND user_id = $2
	`, taskID, userID).Scan(
		&task.ID, &task.UserID, &task.WorkspaceID, &task.Title, &task.Description,
		&task.Status, &task.Priority, &task.DueDate, &task.TaskTypeID,
		&task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	tags, err := d.GetTaskTags(task.ID)
	if err != nil {
		return nil, err
	}
	task.Tags = tags

	return &task, nil
}

func (d *DatabaseClient) ListTasks(workspaceID, userID uuid.UUID) ([]models.Task, error) {
	rows, err := d.db.Query(`
		SELECT id, user_id, workspace_id, title, description, status, priority, due_date, task_type_id, created_at, updated_at
		FROM tasks
		WHERE workspace_id = $1 AND user_id = $2
		ORDER BY created_at DESC
	`, workspaceID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		err := rows.Scan(
			&task.ID, &task.UserID, &task.WorkspaceID, &task.Title, &task.Description,
			&task.Status, &task.Priority, &task.DueDate, &task.TaskTypeID,
			&task.CreatedAt, &task.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (d *DatabaseClient) UpdateTask(taskID, userID uuid.UUID, req *models.UpdateTaskRequest, taskTypeID uuid.NullUUID) (*models.Task, error) {
	var task models.Task
	var priority sql.NullString
	if req.Priority != nil {
		priority = sql.NullString{String: *req.Priority, Valid: *req.Priority != ""}
	}
	var due sql.NullTime
	if req.DueDate != nil {
		due = sql.NullTime{Time: *req.DueDate, Valid: true}
	}

	err := d.db.QueryRow(`
		UPDATE tasks
		SET title = COALESCE($1, title),
		    description = COALESCE($2, description),
		    priority = CASE WHEN $3 THEN $4 ELSE priority END,
		    due_date = CASE WHEN $5 THEN $6 ELSE due_date END,
		    task_type_id = CASE WHEN $7 THEN $8 ELSE task_type_id END,
		    updated_at = NOW()
		WHERE id = $9 AND user_id = $10
		RETURNING id, user_id, workspace_id, title, description, status, priority, due_date, task_type_id, created_at, updated_at
	`, req.Title, req.Description,
		req.Priority != nil, priority,
		req.DueDate != nil, due,
		req.TaskTypeID != nil, taskTypeID,
		taskID, userID).Scan(
		&task.ID, &task.UserID, &task.WorkspaceID, &task.Title, &task.Description,
		&task.Status, &task.Priority, &task.DueDate, &task.TaskTypeID,
		&task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return &task, nil
}

// UpdateTaskStatus writes the new status unconditionally. Transition
// legality for the ordered workflow is enforced by the caller's UI, not
// here; direct selection may jump between any declared statuses.
func (d *DatabaseClient) UpdateTaskStatus(taskID, userID uuid.UUID, status string) (*models.Task, error) {
	var task models.Task
	err := d.db.QueryRow(`
		UPDATE tasks
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, workspace_id, title, description, status, priority, due_date, task_type_id, created_at, updated_at
	`, status, taskID, userID).Scan(
		&task.ID, &task.UserID, &task.WorkspaceID, &task.Title, &task.Description,
		&task.Status, &task.Priority, &task.DueDate, &task.TaskTypeID,
		&task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	return &task, nil
}

func (d *DatabaseClient) DeleteTask(taskID, userID uuid.UUID) error {
	result, err := d.db.Exec(`
		DELETE FROM tasks
		WHERE id = $1 AND user_id = $2
	`, taskID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("task not found")
	}
	return nil
}

// SetTaskTags replaces the task's tag set with the given tag ids.
func (d *DatabaseClient) SetTaskTags(taskID uuid.UUID, tagIDs []uuid.UUID) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM task_tags WHERE task_id = $1`, taskID); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear task tags: %w", err)
	}

	for _, tagID := range tagIDs {
		if _, err := tx.Exec(`
			INSERT INTO task_tags (task_id, tag_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, taskID, tagID); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to link tag: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit task tags: %w", err)
	}
	return nil
}

func (d *DatabaseClient) GetTaskTags(taskID uuid.UUID) ([]models.Tag, error) {
	rows, err := d.db.Query(`
		SELECT t.id, t.user_id, t.workspace_id, t.name, t.color, t.created_at
		FROM tags t
		JOIN task_tags tt ON tt.tag_id = t.id
		WHERE tt.task_id = $1
		ORDER BY t.name ASC
	`, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task tags: %w", err)
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var tag models.Tag
		err := rows.Scan(&tag.ID, &tag.UserID, &tag.WorkspaceID, &tag.Name, &tag.Color, &tag.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}

	return tags, nil
}
