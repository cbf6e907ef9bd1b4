package supabase

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"kosmos-backend/internal/models"
)

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

// NewDatabaseClientFromDB wraps an already-open handle. Used by tests that
// inject a mock database.
func NewDatabaseClientFromDB(db *sql.DB) *DatabaseClient {
	return &DatabaseClient{db: db}
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}

func (d *DatabaseClient) CreateWorkspace(userID uuid.UUID, name, color, icon string) (*models.Workspace, error) {
	var ws models.Workspace
	err := d.db.QueryRow(`
		INSERT INTO workspaces (id, user_id, name, color, icon)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, name, color, icon, created_at, updated_at
	`, uuid.New(), userID, name, color, icon).Scan(
		&ws.ID, &ws.UserID, &ws.Name, &ws.Color, &ws.Icon, &ws.CreatedAt, &ws.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	return &ws, nil
}

func (d *DatabaseClient) GetWorkspace(workspaceID, userID uuid.UUID) (*models.Workspace, error) {
	var ws models.Workspace
	err := d.db.QueryRow(`
		SELECT id, user_id, name, color, icon, created_at, updated_at
		FROM workspaces
		WHERE id = $1 AND user_id = $2
	`, workspaceID, userID).Scan(
		&ws.ID, &ws.UserID, &ws.Name, &ws.Color, &ws.Icon, &ws.CreatedAt, &ws.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	return &ws, nil
}

func (d *DatabaseClient) ListWorkspaces(userID uuid.UUID) ([]models.Workspace, error) {
	rows, err := d.db.Query(`
		SELECT id, user_id, name, color, icon, created_at, updated_at
		FROM workspaces
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	defer rows.Close()

	var workspaces []models.Workspace
	for rows.Next() {
		var ws models.Workspace
		err := rows.Scan(&ws.ID, &ws.UserID, &ws.Name, &ws.Color, &ws.Icon, &ws.CreatedAt, &ws.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workspace: %w", err)
		}
		workspaces = append(workspaces, ws)
	}

	return workspaces, nil
}

func (d *DatabaseClient) UpdateWorkspace(workspaceID, userID uuid.UUID, name, color, icon *string) (*models.Workspace, error) {
	var ws models.Workspace
	err := d.db.QueryRow(`
		UPDATE workspaces
		SET name = COALESCE($1, name),
		    color = COALESCE($2, color),
		    icon = COALESCE($3, icon),
		    updated_at = NOW()
		WHERE id = $4 AND user_id = $5
		RETURNING id, user_id, name, color, icon, created_at, updated_at
	`, name, color, icon, workspaceID, userID).Scan(
		&ws.ID, &ws.UserID, &ws.Name, &ws.Color, &ws.Icon, &ws.CreatedAt, &ws.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update workspace: %w", err)
	}

	return &ws, nil
}

func (d *DatabaseClient) DeleteWorkspace(workspaceID, userID uuid.UUID) error {
	result, err := d.db.Exec(`
		DELETE FROM workspaces
		WHERE id = $1 AND user_id = $2
	`, workspaceID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("workspace not found")
	}
	return nil
}
