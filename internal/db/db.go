package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/basedalex/tag-extractor/pkg/frequency"
	"github.com/basedalex/tag-extractor/pkg/report"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("report not found")

const schema = `
CREATE TABLE IF NOT EXISTS reports (
	id           TEXT PRIMARY KEY,
	title        TEXT NOT NULL,
	stop_words   INTEGER NOT NULL,
	generated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS reports_title_idx ON reports (title, generated_at DESC);
CREATE TABLE IF NOT EXISTS report_tags (
	report_id TEXT NOT NULL REFERENCES reports (id) ON DELETE CASCADE,
	token     TEXT NOT NULL,
	count     INTEGER NOT NULL CHECK (count > 0),
	PRIMARY KEY (report_id, token)
);`

type Postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(ctx context.Context, dbConnect string) (*Postgres, error) {
	config, err := pgxpool.ParseConfig(dbConnect)
	if err != nil {
		return nil, fmt.Errorf("error parsing connection string: %w", err)
	}

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error pinging to database: %w", err)
	}

	return &Postgres{db: db}, nil
}

// Migrate creates the report tables when they do not exist yet.
func (db *Postgres) Migrate(ctx context.Context) error {
	_, err := db.db.Exec(ctx, schema)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}

	return nil
}

func (db *Postgres) Close() {
	db.db.Close()
}

// SaveReport stores a report with all of its tags in one transaction.
func (db *Postgres) SaveReport(ctx context.Context, r report.Report) error {
	tx, err := db.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer tx.Rollback(ctx)

	stmt := `
	INSERT INTO reports (id, title, stop_words, generated_at)
	VALUES ($1, $2, $3, $4);`

	_, err = tx.Exec(ctx, stmt, r.ID, r.Title, r.StopWords, r.GeneratedAt)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}

	rows := make([][]any, 0, len(r.Entries))
	for _, e := range r.Entries {
		rows = append(rows, []any{r.ID, e.Token, e.Count})
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"report_tags"},
		[]string{"report_id", "token", "count"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"id":    r.ID,
		"title": r.Title,
		"tags":  len(r.Entries),
	}).Info("report saved")

	return nil
}

// GetReport returns the most recent report stored under title.
func (db *Postgres) GetReport(ctx context.Context, title string) (report.Report, error) {
	query := `
	SELECT id, title, stop_words, generated_at FROM reports
	WHERE title = $1
	ORDER BY generated_at DESC
	LIMIT 1;`

	var r report.Report
	row := db.db.QueryRow(ctx, query, title)
	err := row.Scan(&r.ID, &r.Title, &r.StopWords, &r.GeneratedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return report.Report{}, ErrNotFound
	}
	if err != nil {
		logrus.Info(err)
		return report.Report{}, fmt.Errorf("database: %w", err)
	}

	tagsQuery := `
	SELECT token, count FROM report_tags
	WHERE report_id = $1
	ORDER BY token COLLATE "C";`

	rows, err := db.db.Query(ctx, tagsQuery, r.ID)
	if err != nil {
		return report.Report{}, fmt.Errorf("database: %w", err)
	}

	entries, err := pgx.CollectRows(rows, pgx.RowToStructByPos[frequency.Entry])
	if err != nil {
		return report.Report{}, fmt.Errorf("database: %w", err)
	}
	r.Entries = entries
	r.GeneratedAt = r.GeneratedAt.UTC()

	return r, nil
}

// ListTitles returns every distinct title that has a stored report.
func (db *Postgres) ListTitles(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT title FROM reports ORDER BY title;`

	rows, err := db.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	titles, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	return titles, nil
}
