package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"goblog/internal/models"
	"goblog/internal/service"
)

func TestGetPages_Public(t *testing.T) {
	handler := createTestHandler()
	mockPages := handler.PageService.(*MockPageService)

	mockPages.On("ListPages", mock.Anything).Return([]models.Page{
		{ID: 1, Title: "About", Text: "About this blog.", Created: time.Now()},
		{ID: 2, Title: "Links", Text: "Links.", Created: time.Now()},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/pages", nil)
	rr := httptest.NewRecorder()

	handler.GetPages(rr, req)

	assertJSONStatus(t, rr, http.StatusOK)

	var resp []map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "About", resp[0]["title"])
}

func TestCreatePage_AdminOnly(t *testing.T) {
	handler := createTestHandler()
	mockPages := handler.PageService.(*MockPageService)

	body, _ := json.Marshal(map[string]string{
		"title": "About",
		"text":  "About this blog.",
	})

	t.Run("non-admin is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/pages", bytes.NewReader(body))
		req = authedRequest(req, 1, "alice", false)
		rr := httptest.NewRecorder()

		handler.CreatePage(rr, req)

		assertJSONError(t, rr, http.StatusForbidden, "admin access required")
	})

	t.Run("admin creates the page", func(t *testing.T) {
		mockPages.On("CreatePage", mock.Anything, service.CreatePageRequest{
			Title: "About",
			Text:  "About this blog.",
		}).Return(&models.Page{ID: 1, Title: "About", Text: "About this blog.", Created: time.Now()}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/pages", bytes.NewReader(body))
		req = authedRequest(req, 1, "root", true)
		rr := httptest.NewRecorder()

		handler.CreatePage(rr, req)

		assertJSONStatus(t, rr, http.StatusCreated)
		mockPages.AssertExpectations(t)
	})
}

func TestUpdatePage_Admin(t *testing.T) {
	handler := createTestHandler()
	mockPages := handler.PageService.(*MockPageService)

	mockPages.On("UpdatePage", mock.Anything, service.UpdatePageRequest{
		PageID: 1,
		Title:  "About",
		Text:   "Rewritten.",
	}).Return(&models.Page{ID: 1, Title: "About", Text: "Rewritten."}, nil)

	body, _ := json.Marshal(map[string]string{
		"title": "About",
		"text":  "Rewritten.",
	})

	req := httptest.NewRequest(http.MethodPut, "/api/pages/1", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": "1"})
	req = authedRequest(req, 1, "root", true)
	rr := httptest.NewRecorder()

	handler.UpdatePage(rr, req)

	assertJSONStatus(t, rr, http.StatusOK)
	mockPages.AssertExpectations(t)
}

func TestDeletePage_NonAdminRejected(t *testing.T) {
	handler := createTestHandler()

	req := httptest.NewRequest(http.MethodDelete, "/api/pages/1", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "1"})
	req = authedRequest(req, 1, "alice", false)
	rr := httptest.NewRecorder()

	handler.DeletePage(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
