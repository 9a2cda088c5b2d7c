package store

import (
	"context"
	"errors"
	"fmt"

	"mapnotes-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements the Store interface on PostgreSQL. The seq column
// preserves append order so List matches the flat-file store's ordering.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a PostgreSQL-backed store.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the locations table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS locations (
		seq BIGSERIAL,
		id TEXT PRIMARY KEY,
		lat DOUBLE PRECISION NOT NULL,
		lng DOUBLE PRECISION NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		video_urls TEXT[] NOT NULL DEFAULT '{}',
		image_url TEXT NOT NULL DEFAULT '',
		audio_url TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL DEFAULT ''
	);
	`
	if _, err := s.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("store: failed to ensure schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]models.LocationRecord, error) {
	sql := `
		SELECT id, lat, lng, title, description, video_urls, image_url, audio_url, created_at
		FROM locations
		ORDER BY seq
	`

	rows, err := s.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("store: failed to list locations: %w", err)
	}
	defer rows.Close()

	locations := []models.LocationRecord{}
	for rows.Next() {
		var rec models.LocationRecord
		err := rows.Scan(
			&rec.ID,
			&rec.Lat,
			&rec.Lng,
			&rec.Title,
			&rec.Description,
			&rec.Videos,
			&rec.ImageURL,
			&rec.AudioURL,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("store: failed to scan location: %w", err)
		}
		locations = append(locations, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: error iterating rows: %w", err)
	}

	return locations, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (models.LocationRecord, error) {
	sql := `
		SELECT id, lat, lng, title, description, video_urls, image_url, audio_url, created_at
		FROM locations
		WHERE id = $1
	`

	var rec models.LocationRecord
	err := s.db.QueryRow(ctx, sql, id).Scan(
		&rec.ID,
		&rec.Lat,
		&rec.Lng,
		&rec.Title,
		&rec.Description,
		&rec.Videos,
		&rec.ImageURL,
		&rec.AudioURL,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.LocationRecord{}, ErrNotFound
		}
		return models.LocationRecord{}, fmt.Errorf("store: failed to get location: %w", err)
	}

	return rec, nil
}

func (s *PostgresStore) Insert(ctx context.Context, rec models.LocationRecord) error {
	sql := `
		INSERT INTO locations (id, lat, lng, title, description, video_urls, image_url, audio_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	videos := rec.Videos
	if videos == nil {
		videos = []string{}
	}

	_, err := s.db.Exec(ctx, sql,
		rec.ID, rec.Lat, rec.Lng, rec.Title, rec.Description, videos, rec.ImageURL, rec.AudioURL, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("store: failed to insert location: %w", err)
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, rec models.LocationRecord) error {
	sql := `
		UPDATE locations
		SET lat = $2, lng = $3, title = $4, description = $5, video_urls = $6, image_url = $7, audio_url = $8, created_at = $9
		WHERE id = $1
	`

	videos := rec.Videos
	if videos == nil {
		videos = []string{}
	}

	tag, err := s.db.Exec(ctx, sql,
		rec.ID, rec.Lat, rec.Lng, rec.Title, rec.Description, videos, rec.ImageURL, rec.AudioURL, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("store: failed to update location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	// Absent id is a no-op by contract, so the affected-row count is not
	// checked.
	_, err := s.db.Exec(ctx, "DELETE FROM locations WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("store: failed to delete location: %w", err)
	}
	return nil
}
