package thumbnails

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thumbgallery/model"
)

const (
	createTableQuery = `CREATE TABLE IF NOT EXISTS thumbnails (
	 id SERIAL PRIMARY KEY,
	 source_url TEXT NOT NULL,
	 thumb_path TEXT NOT NULL DEFAULT '',
	 published_url TEXT NOT NULL DEFAULT '',
	 ok BOOLEAN NOT NULL,
	 reason TEXT NOT NULL DEFAULT '',
	 created_at TIMESTAMPTZ NOT NULL DEFAULT now())`

	createSourceURLIndexQuery = "CREATE UNIQUE INDEX IF NOT EXISTS thumbnails_source_url_key ON thumbnails (source_url)"

	allThumbnailsQuery       = "SELECT id, source_url, thumb_path, published_url, ok, reason FROM thumbnails ORDER BY id"
	succeededThumbnailsQuery = "SELECT id, source_url, thumb_path, published_url, ok, reason FROM thumbnails WHERE ok ORDER BY id"
	upsertThumbnailQuery     = `INSERT INTO thumbnails (source_url, thumb_path, published_url, ok, reason) VALUES ($1, $2, $3, $4, $5)
	 ON CONFLICT (source_url) DO UPDATE SET
	 thumb_path = EXCLUDED.thumb_path,
	 published_url = EXCLUDED.published_url,
	 ok = EXCLUDED.ok,
	 reason = EXCLUDED.reason,
	 created_at = now()
	 RETURNING id`
)

// DB is satisfied by *sql.DB and *sql.Tx.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Repo contains db session.
type Repo struct {
	db DB
}

// NewRepo creates new Repo struct with db session.
func NewRepo(db DB) *Repo {
	return &Repo{db}
}

// Migrate creates thumbnails table and its source url index if they don't exist.
func (r *Repo) Migrate(ctx context.Context) error {
	for _, q := range []string{createTableQuery, createSourceURLIndexQuery} {
		if _, err := r.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("creating thumbnails table failed with error: %w", err)
		}
	}
	return nil
}

// Save stores processing result, replacing the previous one of the same
// source url.
func (r *Repo) Save(ctx context.Context, res model.ThumbnailResult) (int, error) {
	var id int
	if err := r.db.QueryRowContext(ctx, upsertThumbnailQuery,
		res.SourceURL, res.ThumbPath, res.PublishedURL, res.OK, res.Reason,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("inserting of '%v' to db failed with error: %w", res.SourceURL, err)
	}
	return id, nil
}

// All returns all results in insertion order.
func (r *Repo) All(ctx context.Context) ([]model.ThumbnailResult, error) {
	return r.query(ctx, allThumbnailsQuery)
}

// OnlySucceeded returns only results with a generated thumbnail.
func (r *Repo) OnlySucceeded(ctx context.Context) ([]model.ThumbnailResult, error) {
	return r.query(ctx, succeededThumbnailsQuery)
}

func (r *Repo) query(ctx context.Context, query string) ([]model.ThumbnailResult, error) {
	const errMsg = "error getting thumbnails from DB: %w"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf(errMsg, err)
	}
	defer rows.Close()

	res := []model.ThumbnailResult{}
	for rows.Next() {
		var t model.ThumbnailResult
		if err := rows.Scan(
			&t.ID,
			&t.SourceURL,
			&t.ThumbPath,
			&t.PublishedURL,
			&t.OK,
			&t.Reason,
		); err != nil {
			return nil, fmt.Errorf(errMsg, err)
		}
		res = append(res, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(errMsg, err)
	}
	return res, nil
}
