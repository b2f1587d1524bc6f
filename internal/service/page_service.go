package service

import (
	"context"

	"goblog/internal/models"
	"goblog/internal/repository"
)

type CreatePageRequest struct {
	Title string `json:"title" validate:"required,max=120"`
	Text  string `json:"text" validate:"required"`
}

type UpdatePageRequest struct {
	PageID int64  `json:"pageId"`
	Title  string `json:"title" validate:"required,max=120"`
	Text   string `json:"text" validate:"required"`
}

type PageService interface {
	CreatePage(ctx context.Context, req CreatePageRequest) (*models.Page, error)
	UpdatePage(ctx context.Context, req UpdatePageRequest) (*models.Page, error)
	DeletePage(ctx context.Context, pageID int64) error
	GetPage(ctx context.Context, pageID int64) (*models.Page, error)
	ListPages(ctx context.Context) ([]models.Page, error)
}

type pageService struct {
	pageRepo repository.PageRepository
}

func NewPageService(pageRepo repository.PageRepository) PageService {
	return &pageService{pageRepo: pageRepo}
}

func (s *pageService) CreatePage(ctx context.Context, req CreatePageRequest) (*models.Page, error) {
	page := &models.Page{
		Title: req.Title,
		Text:  req.Text,
	}

	if err := s.pageRepo.Create(ctx, page); err != nil {
		return nil, err
	}

	return page, nil
}

func (s *pageService) UpdatePage(ctx context.Context, req UpdatePageRequest) (*models.Page, error) {
	page, err := s.pageRepo.GetByID(ctx, req.PageID)
	if err != nil {
		return nil, err
	}

	page.Title = req.Title
	page.Text = req.Text

	if err := s.pageRepo.Update(ctx, page); err != nil {
		return nil, err
	}

	return page, nil
}

func (s *pageService) DeletePage(ctx context.Context, pageID int64) error {
	return s.pageRepo.Delete(ctx, pageID)
}

func (s *pageService) GetPage(ctx context.Context, pageID int64) (*models.Page, error) {
	return s.pageRepo.GetByID(ctx, pageID)
}

func (s *pageService) ListPages(ctx context.Context) ([]models.Page, error) {
	return s.pageRepo.GetAll(ctx)
}
