package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"goblog/internal/config"
	"goblog/internal/database"
	"goblog/internal/repository"
	"goblog/internal/service"
)

type Handlers struct {
	AuthService service.AuthService
	UserService service.UserService
	PostService service.PostService
	PageService service.PageService
	UserRepo    repository.UserRepository
	PostRepo    repository.PostRepository
	StatsRepo   repository.StatsRepository
	DB          *database.DB
	Cfg         *config.Config
	Validate    *validator.Validate
}

func NewHandlers(repo *repository.Repository, services *service.Service, db *database.DB, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService: services.Auth,
		UserService: services.User,
		PostService: services.Post,
		PageService: services.Page,
		UserRepo:    repo.User,
		PostRepo:    repo.Post,
		StatsRepo:   repo.Stats,
		DB:          db,
		Cfg:         cfg,
		Validate:    validator.New(),
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		WriteError(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}
	WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsRepo.Counts(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	WriteSuccess(w, stats, http.StatusOK)
}
