package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"goblog/cmd/app"
	"goblog/internal/config"
	handlers "goblog/internal/handler"
	"goblog/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, db, cfg)

	router := mux.NewRouter()

	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)
	router.Handle("/api/stats", middleware.AdminOnly(http.HandlerFunc(handler.Stats))).Methods(http.MethodGet)

	router.HandleFunc("/api/auth/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/refresh", handler.Refresh).Methods(http.MethodPost)

	router.HandleFunc("/api/users/me", handler.GetCurrentUser).Methods(http.MethodGet)
	router.HandleFunc("/api/users/me/password", handler.ChangePassword).Methods(http.MethodPut)
	router.HandleFunc("/api/users/{id:[0-9]+}", handler.GetUser).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{id:[0-9]+}", handler.UpdateUser).Methods(http.MethodPut)
	router.HandleFunc("/api/users/{id:[0-9]+}", handler.DeleteUser).Methods(http.MethodDelete)
	router.HandleFunc("/api/users/{id:[0-9]+}/posts", handler.GetUserPosts).Methods(http.MethodGet)

	router.HandleFunc("/api/posts", handler.GetPosts).Methods(http.MethodGet)
	router.HandleFunc("/api/posts", handler.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{id:[0-9]+}", handler.GetPost).Methods(http.MethodGet)
	router.HandleFunc("/api/posts/{id:[0-9]+}", handler.UpdatePost).Methods(http.MethodPut)
	router.HandleFunc("/api/posts/{id:[0-9]+}", handler.DeletePost).Methods(http.MethodDelete)
	router.HandleFunc("/api/posts/{id:[0-9]+}/publish", handler.PublishPost).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/slug/{slug}", handler.GetPostBySlug).Methods(http.MethodGet)

	router.HandleFunc("/api/pages", handler.GetPages).Methods(http.MethodGet)
	router.HandleFunc("/api/pages", handler.CreatePage).Methods(http.MethodPost)
	router.HandleFunc("/api/pages/{id:[0-9]+}", handler.GetPage).Methods(http.MethodGet)
	router.HandleFunc("/api/pages/{id:[0-9]+}", handler.UpdatePage).Methods(http.MethodPut)
	router.HandleFunc("/api/pages/{id:[0-9]+}", handler.DeletePage).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		router,
		middleware.AuthMiddleware(cfg),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server listening on %s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
