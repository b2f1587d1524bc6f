package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"goblog/internal/middleware"
	"goblog/internal/service"
)

func (h *Handlers) GetPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.PageService.ListPages(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := make([]PageResponse, 0, len(pages))
	for i := range pages {
		resp = append(resp, toPageResponse(&pages[i]))
	}

	WriteSuccess(w, resp, http.StatusOK)
}

func (h *Handlers) GetPage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteError(w, "invalid page id", http.StatusBadRequest)
		return
	}

	page, err := h.PageService.GetPage(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, toPageResponse(page), http.StatusOK)
}

// CreatePage is admin-only: static pages (about, links) belong to the
// site, not to individual authors.
func (h *Handlers) CreatePage(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsAdminFromContext(r.Context()) {
		WriteError(w, "admin access required", http.StatusForbidden)
		return
	}

	var req service.CreatePageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := h.PageService.CreatePage(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, toPageResponse(page), http.StatusCreated)
}

func (h *Handlers) UpdatePage(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsAdminFromContext(r.Context()) {
		WriteError(w, "admin access required", http.StatusForbidden)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteError(w, "invalid page id", http.StatusBadRequest)
		return
	}

	var req service.UpdatePageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	req.PageID = id

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := h.PageService.UpdatePage(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, toPageResponse(page), http.StatusOK)
}

func (h *Handlers) DeletePage(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsAdminFromContext(r.Context()) {
		WriteError(w, "admin access required", http.StatusForbidden)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteError(w, "invalid page id", http.StatusBadRequest)
		return
	}

	if err := h.PageService.DeletePage(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"status": "deleted"}, http.StatusOK)
}
