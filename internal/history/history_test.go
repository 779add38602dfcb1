package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediatools/shottime/internal/timeline"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewWithDB(db), mock
}

func TestBeginRun(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO runs").
		WithArgs("/photos", false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := store.BeginRun(context.Background(), "/photos", false)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBeginRun_Error(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO runs").
		WillReturnError(errors.New("disk full"))

	_, err := store.BeginRun(context.Background(), "/photos", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "begin run")
}

func TestRecordFile(t *testing.T) {
	store, mock := newMockStore(t)

	oldMtime := time.Unix(1000, 0)
	target := time.Unix(2000, 0)

	mock.ExpectExec("INSERT INTO files").
		WithArgs(int64(7), "a.jpg", oldMtime, target, "interpolated between anchors").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := store.RecordFile(context.Background(), 7, "a.jpg", oldMtime, target, "interpolated between anchors")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinishRun(t *testing.T) {
	store, mock := newMockStore(t)

	stats := timeline.Stats{Total: 10, Anchors: 4, Filled: 5, Skipped: 1}

	mock.ExpectExec("UPDATE runs SET").
		WithArgs(sqlmock.AnyArg(), 10, 4, 5, 1, 3, 9, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.FinishRun(context.Background(), 7, stats, 3, 9)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRuns(t *testing.T) {
	store, mock := newMockStore(t)

	started := time.Unix(5000, 0)
	finished := time.Unix(6000, 0)

	rows := sqlmock.NewRows([]string{
		"id", "root", "dry_run", "started_at", "finished_at",
		"total", "anchors", "filled", "skipped", "exif_written", "times_synced",
	}).
		AddRow(2, "/photos", false, started, finished, 10, 4, 5, 1, 3, 9).
		AddRow(1, "/old", true, started, nil, 2, 2, 0, 0, 0, 0)

	mock.ExpectQuery("SELECT (.+) FROM runs ORDER BY id DESC LIMIT").
		WithArgs(20).
		WillReturnRows(rows)

	runs, err := store.ListRuns(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, int64(2), runs[0].ID)
	assert.Equal(t, "/photos", runs[0].Root)
	assert.False(t, runs[0].DryRun)
	require.NotNil(t, runs[0].FinishedAt)
	assert.True(t, runs[0].FinishedAt.Equal(finished))
	assert.Equal(t, 10, runs[0].Total)
	assert.Equal(t, 9, runs[0].TimeSyncs)

	assert.True(t, runs[1].DryRun)
	assert.Nil(t, runs[1].FinishedAt)
}

func TestListRuns_QueryError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT (.+) FROM runs").
		WillReturnError(errors.New("locked"))

	_, err := store.ListRuns(context.Background(), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list runs")
}
