package service

import (
	"goblog/internal/config"
	"goblog/internal/repository"
)

type Service struct {
	Auth AuthService
	User UserService
	Post PostService
	Page PageService
}

func NewService(repo *repository.Repository, cfg *config.Config) *Service {
	return &Service{
		Auth: NewAuthService(repo.User, repo.Session, cfg),
		User: NewUserService(repo.User),
		Post: NewPostService(repo.Post),
		Page: NewPageService(repo.Page),
	}
}
