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

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts the post. The created timestamp is set here, per insert,
// and never touched again; modified stays NULL until the first update.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	post.Created = time.Now()
	post.Modified = sql.NullTime{}

	query := `
		INSERT INTO posts (title, summary, body, created, modified, pub_date, author, slug)
		VALUES (:title, :summary, :body, :created, :modified, :pub_date, :author, :slug)
		RETURNING id
	`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing post insert: %w", err)
	}
	defer stmt.Close()

	if err := stmt.GetContext(ctx, &post.ID, post); err != nil {
		return fmt.Errorf("creating post: %w", err)
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post

	query := `SELECT * FROM posts WHERE id = $1`

	err := r.db.GetContext(ctx, &post, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting post: %w", err)
	}

	return &post, nil
}

func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post

	query := `SELECT * FROM posts WHERE slug = $1`

	err := r.db.GetContext(ctx, &post, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %q: %w", slug, ErrNotFound)
		}
		return nil, fmt.Errorf("getting post by slug: %w", err)
	}

	return &post, nil
}

// GetByAuthor enumerates a user's posts on demand. This is the query
// behind User.posts; posts are never loaded eagerly with the user row.
func (r *postRepository) GetByAuthor(ctx context.Context, authorID int64) ([]models.Post, error) {
	query := `SELECT * FROM posts WHERE author = $1 ORDER BY created DESC`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("getting posts by author: %w", err)
	}

	return posts, nil
}

// GetVisible returns published posts: pub_date set and not in the
// future, evaluated against the database clock at query time.
func (r *postRepository) GetVisible(ctx context.Context, limit, offset int) ([]models.Post, error) {
	query := `
		SELECT * FROM posts
		WHERE pub_date IS NOT NULL AND pub_date <= CURRENT_TIMESTAMP
		ORDER BY pub_date DESC
		LIMIT $1 OFFSET $2
	`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("getting visible posts: %w", err)
	}

	return posts, nil
}

// Update rewrites the mutable columns and refreshes modified. created is
// deliberately absent from the SET list so it can never change after
// insert.
func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	post.Modified = sql.NullTime{Time: time.Now(), Valid: true}

	query := `
		UPDATE posts SET
			title = :title,
			summary = :summary,
			body = :body,
			modified = :modified,
			pub_date = :pub_date,
			slug = :slug
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("updating post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("post %d: %w", post.ID, ErrNotFound)
	}

	return nil
}

// Publish sets the publication date. A future pubDate schedules the
// post; it becomes visible once the date passes, with no further write.
func (r *postRepository) Publish(ctx context.Context, id int64, pubDate time.Time) error {
	query := `
		UPDATE posts SET
			pub_date = $1,
			modified = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, pubDate, time.Now(), id)
	if err != nil {
		return fmt.Errorf("publishing post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("post %d: %w", id, ErrNotFound)
	}

	return nil
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM posts WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("post %d: %w", id, ErrNotFound)
	}

	return nil
}
