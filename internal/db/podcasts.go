package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"podhost/internal/models"
)

// acquireTimeout bounds how long an operation may wait for a pooled
// connection. Callers fail fast instead of queueing behind a full pool.
const acquireTimeout = 3 * time.Second

// Store is the persistence boundary for podcast records. It is injected
// into handlers rather than held as package state.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListPodcasts(ctx context.Context) ([]models.Podcast, error) {
	ctx, cancel := context.WithTimeout(ctx, acquireTimeout)
	defer cancel()

	podcasts := []models.Podcast{}
	err := s.db.SelectContext(ctx, &podcasts, "SELECT * FROM podcast")
	return podcasts, err
}

func (s *Store) GetPodcast(ctx context.Context, id uuid.UUID) (models.Podcast, error) {
	ctx, cancel := context.WithTimeout(ctx, acquireTimeout)
	defer cancel()

	podcast := models.Podcast{}
	err := s.db.GetContext(ctx, &podcast, "SELECT * FROM podcast WHERE id = $1", id)
	return podcast, err
}

// InsertPodcast persists a new record. The id and created_at columns are
// assigned by the database and returned with the stored row.
func (s *Store) InsertPodcast(ctx context.Context, title, url string) (models.Podcast, error) {
	ctx, cancel := context.WithTimeout(ctx, acquireTimeout)
	defer cancel()

	podcast := models.Podcast{}
	err := s.db.GetContext(ctx, &podcast, "INSERT INTO podcast (title, url) VALUES ($1, $2) RETURNING *", title, url)
	return podcast, err
}

func (s *Store) DeletePodcast(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, acquireTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, "DELETE FROM podcast WHERE id = $1", id)
	return err
}

func (s *Store) DeleteAllPodcasts(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, acquireTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, "DELETE FROM podcast")
	return err
}

func (s *Store) ListPodcastURLs(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, acquireTimeout)
	defer cancel()

	urls := []string{}
	err := s.db.SelectContext(ctx, &urls, "SELECT url FROM podcast")
	return urls, err
}
