package supabase_test

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"kosmos-backend/internal/supabase"
)

func newClientWithMock(t *testing.T) (*supabase.DatabaseClient, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return supabase.NewDatabaseClientFromDB(db), mock, db
}

func TestClaimSermonProcessing_Claims(t *testing.T) {
	client, mock, db := newClientWithMock(t)
	defer db.Close()

	noteID := uuid.New()
	mock.ExpectExec(`UPDATE\s+sermon_notes`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	claimed, err := client.ClaimSermonProcessing(noteID)
	assert.NoError(t, err)
	assert.True(t, claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimSermonProcessing_AlreadyClaimed(t *testing.T) {
	client, mock, db := newClientWithMock(t)
	defer db.Close()

	noteID := uuid.New()
	mock.ExpectExec(`UPDATE\s+sermon_notes`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	claimed, err := client.ClaimSermonProcessing(noteID)
	assert.NoError(t, err)
	assert.False(t, claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteSermonProcessing_Success(t *testing.T) {
	client, mock, db := newClientWithMock(t)
	defer db.Close()

	noteID := uuid.New()
	mock.ExpectExec(`UPDATE\s+sermon_notes`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := client.CompleteSermonProcessing(noteID, "raw text", "# markdown")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteSermonProcessing_NotProcessing(t *testing.T) {
	client, mock, db := newClientWithMock(t)
	defer db.Close()

	// The guarded write matches no row when the note never reached
	// PROCESSING; that must surface as an error, not silent success.
	noteID := uuid.New()
	mock.ExpectExec(`UPDATE\s+sermon_notes`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := client.CompleteSermonProcessing(noteID, "raw text", "# markdown")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not in PROCESSING")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFailSermonProcessing_NotProcessing(t *testing.T) {
	client, mock, db := newClientWithMock(t)
	defer db.Close()

	noteID := uuid.New()
	mock.ExpectExec(`UPDATE\s+sermon_notes`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := client.FailSermonProcessing(noteID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not in PROCESSING")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSermonNote_NotFound(t *testing.T) {
	client, mock, db := newClientWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+sermon_notes`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := client.DeleteSermonNote(uuid.New(), uuid.New())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
