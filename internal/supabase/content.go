package supabase

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"kosmos-backend/internal/models"
)

func (d *DatabaseClient) CreateTag(userID, workspaceID uuid.UUID, name, color string) (*models.Tag, error) {
	var tag models.Tag
	err := d.db.QueryRow(`
		INSERT INTO tags (id, user_id, workspace_id, name, color)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, workspace_id, name, color, created_at
	`, uuid.New(), userID, workspaceID, name, color).Scan(
		&tag.ID, &tag.UserID, &tag.WorkspaceID, &tag.Name, &tag.Color, &tag.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	return &tag, nil
}

func (d *DatabaseClient) ListTags(workspaceID, userID uuid.UUID) ([]models.Tag, error) {
	rows, err := d.db.Query(`
		SELECT id, user_id, workspace_id, name, color, created_at
		FROM tags
		WHERE workspace_id = $1 AND user_id = $2
		ORDER BY name ASC
	`, workspaceID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
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

func (d *DatabaseClient) UpdateTag(tagID, userID uuid.UUID, name, color *string) (*models.Tag, error) {
	var tag models.Tag
	err := d.db.QueryRow(`
		UPDATE tags
		SET name = COALESCE($1, name),
		    color = COALESCE($2, color)
		WHERE id = $3 AND user_id = $4
		RETURNING id, user_id, workspace_id, name, color, created_at
	`, name, color, tagID, userID).Scan(
		&tag.ID, &tag.UserID, &tag.WorkspaceID, &tag.Name, &tag.Color, &tag.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}

	return &tag, nil
}

func (d *DatabaseClient) DeleteTag(tagID, userID uuid.UUID) error {
	result, err := d.db.Exec(`
		DELETE FROM tags
		WHERE id = $1 AND user_id = $2
	`, tagID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("tag not found")
	}
	return nil
}

func (d *DatabaseClient) CreateTaskType(userID, workspaceID uuid.UUID, name, icon string) (*models.TaskType, error) {
	var tt models.TaskType
	err := d.db.QueryRow(`
		INSERT INTO task_types (id, user_id, workspace_id, name, icon)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, workspace_id, name, icon, created_at
	`, uuid.New(), userID, workspaceID, name, icon).Scan(
		&tt.ID, &tt.UserID, &tt.WorkspaceID, &tt.Name, &tt.Icon, &tt.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create task type: %w", err)
	}

	return &tt, nil
}

func (d *DatabaseClient) ListTaskTypes(workspaceID, userID uuid.UUID) ([]models.TaskType, error) {
	rows, err := d.db.Query(`
		SELECT id, user_id, workspace_id, name, icon, created_at
		FROM task_types
		WHERE workspace_id = $1 AND user_id = $2
		ORDER BY name ASC
	`, workspaceID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list task types: %w", err)
	}
	defer rows.Close()

	var taskTypes []models.TaskType
	for rows.Next() {
		var tt models.TaskType
		err := rows.Scan(&tt.ID, &tt.UserID, &tt.WorkspaceID, &tt.Name, &tt.Icon, &tt.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task type: %w", err)
		}
		taskTypes = append(taskTypes, tt)
	}

	return taskTypes, nil
}

func (d *DatabaseClient) DeleteTaskType(taskTypeID, userID uuid.UUID) error {
	result, err := d.db.Exec(`
		DELETE FROM task_types
		WHERE id = $1 AND user_id = $2
	`, taskTypeID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete task type: %w", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("task type not found")
	}
	return nil
}

func (d *DatabaseClient) CreateNote(userID, workspaceID uuid.UUID, title, body string) (*models.Note, error) {
	var note models.Note
	err := d.db.QueryRow(`
		INSERT INTO notes (id, user_id, workspace_id, title, body)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, workspace_id, title, body, created_at, updated_at
	`, uuid.New(), userID, workspaceID, title, sql.NullString{String: body, Valid: body != ""}).Scan(
		&note.ID, &note.UserID, &note.WorkspaceID, &note.Title, &note.Body, &note.CreatedAt, &note.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return &note, nil
}

func (d *DatabaseClient) GetNote(noteID, userID uuid.UUID) (*models.Note, error) {
	var note models.Note
	err := d.db.QueryRow(`
		SELECT id, user_id, workspace_id, title, body, created_at, updated_at
		FROM notes
		WHERE id = $1 AND user_id = $2
	`, noteID, userID).Scan(
		&note.ID, &note.UserID, &note.WorkspaceID, &note.Title, &note.Body, &note.CreatedAt, &note.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return &note, nil
}

func (d *DatabaseClient) ListNotes(workspaceID, userID uuid.UUID) ([]models.Note, error) {
	rows, err := d.db.Query(`
		SELECT id, user_id, workspace_id, title, body, created_at, updated_at
		FROM notes
		WHERE workspace_id = $1 AND user_id = $2
		ORDER BY updated_at DESC
	`, workspaceID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var note models.Note
		err := rows.Scan(&note.ID, &note.UserID, &note.WorkspaceID, &note.Title, &note.Body, &note.CreatedAt, &note.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	return notes, nil
}

func (d *DatabaseClient) UpdateNote(noteID, userID uuid.UUID, title, body *string) (*models.Note, error) {
	var note models.Note
	err := d.db.QueryRow(`
		UPDATE notes
		SET title = COALESCE($1, title),
		    body = COALESCE($2, body),
		    updated_at = NOW()
		WHERE id = $3 AND user_id = $4
		RETURNING id, user_id, workspace_id, title, body, created_at, updated_at
	`, title, body, noteID, userID).Scan(
		&note.ID, &note.UserID, &note.WorkspaceID, &note.Title, &note.Body, &note.CreatedAt, &note.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return &note, nil
}

func (d *DatabaseClient) DeleteNote(noteID, userID uuid.UUID) error {
	result, err := d.db.Exec(`
		DELETE FROM notes
		WHERE id = $1 AND user_id = $2
	`, noteID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("note not found")
	}
	return nil
}

func (d *DatabaseClient) CreatePost(userID uuid.UUID, title, slug, body string) (*models.Post, error) {
	var post models.Post
	err := d.db.QueryRow(`
		INSERT INTO posts (id, user_id, title, slug, body)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, title, slug, body, published, published_at, created_at, updated_at
	`, uuid.New(), userID, title, slug, sql.NullString{String: body, Valid: body != ""}).Scan(
		&post.ID, &post.UserID, &post.Title, &post.Slug, &post.Body,
		&post.Published, &post.PublishedAt, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return &post, nil
}

func (d *DatabaseClient) GetPost(postID, userID uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := d.db.QueryRow(`
		SELECT id, user_id, title, slug, body, published, published_at, created_at, updated_at
		FROM posts
		WHERE id = $1 AND user_id = $2
	`, postID, userID).Scan(
		&post.ID, &post.UserID, &post.Title, &post.Slug, &post.Body,
		&post.Published, &post.PublishedAt, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

func (d *DatabaseClient) ListPosts(userID uuid.UUID) ([]models.Post, error) {
	rows, err := d.db.Query(`
		SELECT id, user_id, title, slug, body, published, published_at, created_at, updated_at
		FROM posts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		var post models.Post
		err := rows.Scan(
			&post.ID, &post.UserID, &post.Title, &post.Slug, &post.Body,
			&post.Published, &post.PublishedAt, &post.CreatedAt, &post.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}

	return posts, nil
}

func (d *DatabaseClient) UpdatePost(postID, userID uuid.UUID, req *models.UpdatePostRequest) (*models.Post, error) {
	var publishedAt sql.NullTime
	if req.Published != nil && *req.Published {
		publishedAt = sql.NullTime{Time: time.Now(), Valid: true}
	}

	var post models.Post
	err := d.db.QueryRow(`
		UPDATE posts
		SET title = COALESCE($1, title),
		    slug = COALESCE($2, slug),
		    body = COALESCE($3, body),
		    published = COALESCE($4, published),
		    published_at = CASE
		        WHEN $4 IS TRUE AND published_at IS NULL THEN $5
		        WHEN $4 IS FALSE THEN NULL
		        ELSE published_at
		    END,
		    updated_at = NOW()
		WHERE id = $6 AND user_id = $7
		RETURNING id, user_id, title, slug, body, published, published_at, created_at, updated_at
	`, req.Title, req.Slug, req.Body, req.Published, publishedAt, postID, userID).Scan(
		&post.ID, &post.UserID, &post.Title, &post.Slug, &post.Body,
		&post.Published, &post.PublishedAt, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return &post, nil
}

func (d *DatabaseClient) DeletePost(postID, userID uuid.UUID) error {
	result, err := d.db.Exec(`
		DELETE FROM posts
		WHERE id = $1 AND user_id = $2
	`, postID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("post not found")
	}
	return nil
}
