package service

import (
	"context"
	"database/sql"
	"time"

	"goblog/internal/models"
	"goblog/internal/repository"
	"goblog/internal/util"
)

type CreatePostRequest struct {
	Title   string     `json:"title" validate:"required,max=120"`
	Summary string     `json:"summary" validate:"required"`
	Body    string     `json:"body" validate:"required"`
	Author  int64      `json:"author"`
	PubDate *time.Time `json:"pubDate"`
}

type UpdatePostRequest struct {
	PostID  int64  `json:"postId"`
	Title   string `json:"title" validate:"required,max=120"`
	Summary string `json:"summary" validate:"required"`
	Body    string `json:"body" validate:"required"`
}

type PostService interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, req UpdatePostRequest) (*models.Post, error)
	PublishPost(ctx context.Context, postID int64, at *time.Time) error
	DeletePost(ctx context.Context, postID int64) error
	ListVisible(ctx context.Context, limit, offset int) ([]models.Post, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]models.Post, error)
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

// CreatePost inserts a draft. The slug is derived from the title; the
// post stays invisible until a pub_date is set, either here or via
// PublishPost.
func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		Title:   req.Title,
		Summary: req.Summary,
		Body:    req.Body,
		Slug:    util.Slugify(req.Title),
	}
	if req.Author != 0 {
		post.Author = sql.NullInt64{Int64: req.Author, Valid: true}
	}
	if req.PubDate != nil {
		post.PubDate = sql.NullTime{Time: *req.PubDate, Valid: true}
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *postService) UpdatePost(ctx context.Context, req UpdatePostRequest) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Summary = req.Summary
	post.Body = req.Body
	post.Slug = util.Slugify(req.Title)

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// PublishPost sets the publication date; nil means now. A future date
// schedules the post.
func (s *postService) PublishPost(ctx context.Context, postID int64, at *time.Time) error {
	pubDate := time.Now()
	if at != nil {
		pubDate = *at
	}

	return s.postRepo.Publish(ctx, postID, pubDate)
}

func (s *postService) DeletePost(ctx context.Context, postID int64) error {
	return s.postRepo.Delete(ctx, postID)
}

func (s *postService) ListVisible(ctx context.Context, limit, offset int) ([]models.Post, error) {
	return s.postRepo.GetVisible(ctx, limit, offset)
}

func (s *postService) ListByAuthor(ctx context.Context, authorID int64) ([]models.Post, error) {
	return s.postRepo.GetByAuthor(ctx, authorID)
}
