package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"goblog/internal/middleware"
	"goblog/internal/service"
)

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "authorization required", http.StatusUnauthorized)
		return
	}

	user, err := h.UserRepo.GetByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, toUserResponse(user), http.StatusOK)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	user, err := h.UserRepo.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, toUserResponse(user), http.StatusOK)
}

// GetUserPosts lists a user's posts. The author sees everything they
// wrote; everyone else gets only the visible ones.
func (h *Handlers) GetUserPosts(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	posts, err := h.PostService.ListByAuthor(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	requesterID, authenticated := middleware.UserIDFromContext(r.Context())
	if !authenticated || requesterID != id {
		visible := posts[:0]
		for _, post := range posts {
			if post.IsVisible() {
				visible = append(visible, post)
			}
		}
		posts = visible
	}

	WriteSuccess(w, toPostResponses(posts), http.StatusOK)
}

func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	requesterID, _ := middleware.UserIDFromContext(r.Context())
	if requesterID != id && !middleware.IsAdminFromContext(r.Context()) {
		WriteError(w, "access denied", http.StatusForbidden)
		return
	}

	var req service.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	req.UserID = id

	// Only admins may grant or revoke the admin flag.
	if req.IsAdmin != nil && !middleware.IsAdminFromContext(r.Context()) {
		WriteError(w, "access denied", http.StatusForbidden)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.UserService.UpdateUser(r.Context(), req); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"status": "updated"}, http.StatusOK)
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	requesterID, _ := middleware.UserIDFromContext(r.Context())
	if requesterID != id && !middleware.IsAdminFromContext(r.Context()) {
		WriteError(w, "access denied", http.StatusForbidden)
		return
	}

	if err := h.UserService.DeleteUser(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"status": "deleted"}, http.StatusOK)
}

func (h *Handlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "authorization required", http.StatusUnauthorized)
		return
	}

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.UserService.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"status": "password changed"}, http.StatusOK)
}
