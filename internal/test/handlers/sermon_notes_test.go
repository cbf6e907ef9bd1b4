package handlers_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"kosmos-backend/internal/handlers"
	"kosmos-backend/internal/middleware"
	"kosmos-backend/internal/services"
	"kosmos-backend/internal/supabase"
)

func setupSermonNotesRouter(t *testing.T, userID uuid.UUID) (*gin.Engine, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	dbClient := supabase.NewDatabaseClientFromDB(db)
	taskService, err := services.NewTaskService(dbClient)
	require.NoError(t, err)

	handler := handlers.NewSermonNotesHandler(dbClient, nil, taskService)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID.String())
		c.Next()
	})
	router.POST("/sermon-notes", handler.Create)
	return router, mock, db
}

func TestCreateSermonNote_ClaimFailureRemovesNote(t *testing.T) {
	userID := uuid.New()
	workspaceID := uuid.New()
	uploadID := uuid.New()
	router, mock, db := setupSermonNotesRouter(t, userID)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT(.|\s)+FROM\s+workspaces`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "color", "icon", "created_at", "updated_at"}).
			AddRow(workspaceID.String(), userID.String(), "Church", "#FF6B6B", "book", now, now))
	mock.ExpectQuery(`INSERT\s+INTO\s+sermon_notes`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "workspace_id", "title", "status", "ocr_text", "markdown", "created_at", "updated_at"}).
			AddRow(uuid.New().String(), userID.String(), workspaceID.String(), "Sunday sermon", "UPLOADED", nil, nil, now, now))
	// The upload was already claimed elsewhere, so the claim matches no row.
	mock.ExpectQuery(`UPDATE\s+images`).
		WillReturnError(sql.ErrNoRows)
	// The freshly created note must be removed, not left behind in UPLOADED.
	mock.ExpectExec(`DELETE\s+FROM\s+sermon_notes`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	body, _ := json.Marshal(map[string]string{
		"workspace_id": workspaceID.String(),
		"title":        "Sunday sermon",
		"upload_id":    uploadID.String(),
	})
	req, _ := http.NewRequest("POST", "/sermon-notes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "upload not found or already used")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSermonNote_WithoutUploadSkipsClaim(t *testing.T) {
	userID := uuid.New()
	workspaceID := uuid.New()
	router, mock, db := setupSermonNotesRouter(t, userID)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT(.|\s)+FROM\s+workspaces`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "color", "icon", "created_at", "updated_at"}).
			AddRow(workspaceID.String(), userID.String(), "Church", "#FF6B6B", "book", now, now))
	mock.ExpectQuery(`INSERT\s+INTO\s+sermon_notes`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "workspace_id", "title", "status", "ocr_text", "markdown", "created_at", "updated_at"}).
			AddRow(uuid.New().String(), userID.String(), workspaceID.String(), "Notes only", "UPLOADED", nil, nil, now, now))

	body, _ := json.Marshal(map[string]string{
		"workspace_id": workspaceID.String(),
		"title":        "Notes only",
	})
	req, _ := http.NewRequest("POST", "/sermon-notes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Notes only")
	assert.NoError(t, mock.ExpectationsWereMet())
}
