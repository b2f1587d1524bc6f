package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"goblog/internal/models"
)

type pageRepository struct {
	db *sqlx.DB
}

func NewPageRepository(db *sqlx.DB) PageRepository {
	return &pageRepository{db: db}
}

func (r *pageRepository) Create(ctx context.Context, page *models.Page) error {
	page.Created = time.Now()
	page.Modified = sql.NullTime{}

	query := `
		INSERT INTO pages (title, text, created, modified)
		VALUES (:title, :text, :created, :modified)
		RETURNING id
	`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing page insert: %w", err)
	}
	defer stmt.Close()

	if err := stmt.GetContext(ctx, &page.ID, page); err != nil {
		return fmt.Errorf("creating page: %w", err)
	}

	return nil
}

func (r *pageRepository) GetByID(ctx context.Context, id int64) (*models.Page, error) {
	var page models.Page

	query := `SELECT * FROM pages WHERE id = $1`

	err := r.db.GetContext(ctx, &page, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("page %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting page: %w", err)
	}

	return &page, nil
}

func (r *pageRepository) GetAll(ctx context.Context) ([]models.Page, error) {
	query := `SELECT * FROM pages ORDER BY title`

	var pages []models.Page
	err := r.db.SelectContext(ctx, &pages, query)
	if err != nil {
		return nil, fmt.Errorf("getting pages: %w", err)
	}

	return pages, nil
}

// Update follows the same timestamp contract as posts: created never
// changes, modified is refreshed on every write.
func (r *pageRepository) Update(ctx context.Context, page *models.Page) error {
	page.Modified = sql.NullTime{Time: time.Now(), Valid: true}

	query := `
		UPDATE pages SET
			title = :title,
			text = :text,
			modified = :modified
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, page)
	if err != nil {
		return fmt.Errorf("updating page: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("page %d: %w", page.ID, ErrNotFound)
	}

	return nil
}

func (r *pageRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM pages WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting page: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("page %d: %w", id, ErrNotFound)
	}

	return nil
}
