package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

// Counts returns row counts per table for the admin dashboard.
func (r *statsRepository) Counts(ctx context.Context) (*Stats, error) {
	var stats Stats

	query := `
		SELECT
			(SELECT COUNT(*) FROM users) AS users,
			(SELECT COUNT(*) FROM posts) AS posts,
			(SELECT COUNT(*) FROM pages) AS pages
	`

	err := r.db.GetContext(ctx, &stats, query)
	if err != nil {
		return nil, fmt.Errorf("counting rows: %w", err)
	}

	return &stats, nil
}
