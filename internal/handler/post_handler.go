package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"goblog/internal/middleware"
	"goblog/internal/service"
)

type PublishPostRequest struct {
	// Absent means publish immediately; a future date schedules the post.
	PubDate *time.Time `json:"pubDate"`
}

// GetPosts lists published posts, newest first, with limit/offset
// pagination.
func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}

	posts, err := h.PostService.ListVisible(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, toPostResponses(posts), http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	post, err := h.PostRepo.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if !post.IsVisible() && !h.isAuthor(r, post.Author.Int64) {
		WriteError(w, "post not found", http.StatusNotFound)
		return
	}

	WriteSuccess(w, toPostResponse(post), http.StatusOK)
}

func (h *Handlers) GetPostBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	post, err := h.PostRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if !post.IsVisible() && !h.isAuthor(r, post.Author.Int64) {
		WriteError(w, "post not found", http.StatusNotFound)
		return
	}

	WriteSuccess(w, toPostResponse(post), http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "authorization required", http.StatusUnauthorized)
		return
	}

	var req service.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	req.Author = userID

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, toPostResponse(post), http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	existing, err := h.PostRepo.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !h.isAuthor(r, existing.Author.Int64) {
		WriteError(w, "access denied", http.StatusForbidden)
		return
	}

	var req service.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	req.PostID = id

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := h.PostService.UpdatePost(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, toPostResponse(post), http.StatusOK)
}

func (h *Handlers) PublishPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	existing, err := h.PostRepo.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !h.isAuthor(r, existing.Author.Int64) {
		WriteError(w, "access denied", http.StatusForbidden)
		return
	}

	var req PublishPostRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	if err := h.PostService.PublishPost(r.Context(), id, req.PubDate); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"status": "published"}, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	existing, err := h.PostRepo.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !h.isAuthor(r, existing.Author.Int64) {
		WriteError(w, "access denied", http.StatusForbidden)
		return
	}

	if err := h.PostService.DeletePost(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"status": "deleted"}, http.StatusOK)
}

// isAuthor reports whether the request comes from the post's author or
// an admin.
func (h *Handlers) isAuthor(r *http.Request, authorID int64) bool {
	if middleware.IsAdminFromContext(r.Context()) {
		return true
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	return ok && userID == authorID
}
