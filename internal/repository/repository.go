package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"goblog/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User, password string) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
	VerifyPassword(ctx context.Context, username, password string) (*models.User, bool, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	GetByAuthor(ctx context.Context, authorID int64) ([]models.Post, error)
	GetVisible(ctx context.Context, limit, offset int) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Publish(ctx context.Context, id int64, pubDate time.Time) error
	Delete(ctx context.Context, id int64) error
}

type PageRepository interface {
	Create(ctx context.Context, page *models.Page) error
	GetByID(ctx context.Context, id int64) (*models.Page, error)
	GetAll(ctx context.Context) ([]models.Page, error)
	Update(ctx context.Context, page *models.Page) error
	Delete(ctx context.Context, id int64) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByToken(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteByUser(ctx context.Context, userID int64) error
}

// Stats holds row counts for the admin dashboard.
type Stats struct {
	Users int `json:"users" db:"users"`
	Posts int `json:"posts" db:"posts"`
	Pages int `json:"pages" db:"pages"`
}

type StatsRepository interface {
	Counts(ctx context.Context) (*Stats, error)
}

type Repository struct {
	User    UserRepository
	Post    PostRepository
	Page    PageRepository
	Session SessionRepository
	Stats   StatsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Post:    NewPostRepository(db),
		Page:    NewPageRepository(db),
		Session: NewSessionRepository(db),
		Stats:   NewStatsRepository(db),
	}
}
