package worker

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hibiken/asynq"

	"podhost/internal/db"
	"podhost/internal/media"
)

// orphanGracePeriod keeps the sweep away from files that may belong to an
// upload still in flight.
const orphanGracePeriod = time.Hour

type TaskHandler struct {
	store   *db.Store
	library *media.Library
}

func NewTaskHandler(store *db.Store, library *media.Library) *TaskHandler {
	return &TaskHandler{store: store, library: library}
}

// HandleSweepOrphansTask removes audio files that no podcast record
// references. Orphans appear when a row insert fails after the file write
// succeeded; the upload path deliberately leaves them for this sweep.
func (h *TaskHandler) HandleSweepOrphansTask(ctx context.Context, t *asynq.Task) error {
	urls, err := h.store.ListPodcastURLs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list podcast urls: %w", err)
	}

	referenced := make(map[string]bool, len(urls))
	for _, url := range urls {
		referenced[filepath.Base(url)] = true
	}

	entries, err := os.ReadDir(h.library.AudioDir())
	if err != nil {
		return fmt.Errorf("failed to read audio directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || referenced[entry.Name()] {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if time.Since(info.ModTime()) < orphanGracePeriod {
			continue
		}

		path := filepath.Join(h.library.AudioDir(), entry.Name())
		if err := os.Remove(path); err != nil {
			log.Printf("failed to remove orphaned file %s: %v", path, err)
			continue
		}
		log.Printf("Removed orphaned audio file: %s", entry.Name())
	}

	return nil
}
