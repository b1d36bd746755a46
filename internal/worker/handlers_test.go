package worker

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podhost/internal/media"
	"podhost/internal/test"
	"podhost/pkg/tasks"
)

func TestHandleSweepOrphansTask(t *testing.T) {
	store, mock := test.NewMockStore(t)
	library, err := media.NewLibrary(t.TempDir())
	require.NoError(t, err)

	// One referenced file, one stale orphan, one orphan fresh enough to be
	// an upload still in flight.
	referencedPath, referencedURL := library.Allocate("audio/mpeg")
	require.NoError(t, os.WriteFile(referencedPath, []byte("data"), 0o644))

	stalePath := filepath.Join(library.AudioDir(), "stale.ogg")
	require.NoError(t, os.WriteFile(stalePath, []byte("data"), 0o644))
	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stalePath, old, old))

	freshPath := filepath.Join(library.AudioDir(), "fresh.wav")
	require.NoError(t, os.WriteFile(freshPath, []byte("data"), 0o644))

	mock.ExpectQuery(`SELECT url FROM podcast`).
		WillReturnRows(sqlmock.NewRows([]string{"url"}).AddRow(referencedURL))

	handler := NewTaskHandler(store, library)
	task := asynq.NewTask(tasks.TypeSweepOrphans, nil)
	require.NoError(t, handler.HandleSweepOrphansTask(context.Background(), task))

	_, err = os.Stat(referencedPath)
	assert.NoError(t, err, "referenced file must survive")

	_, err = os.Stat(freshPath)
	assert.NoError(t, err, "fresh file must survive the grace period")

	_, err = os.Stat(stalePath)
	assert.True(t, os.IsNotExist(err), "stale orphan must be removed")

	assert.NoError(t, mock.ExpectationsWereMet())
}
