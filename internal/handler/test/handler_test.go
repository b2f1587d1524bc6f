package test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"goblog/internal/config"
	handlers "goblog/internal/handler"
)

func createTestHandler() *handlers.Handlers {
	cfg := &config.Config{
		JWTSecretKey:         "test-secret-key",
		ServerPort:           8080,
		AccessTokenDuration:  2 * time.Hour,
		RefreshTokenDuration: 168 * time.Hour,
	}

	return &handlers.Handlers{
		AuthService: &MockAuthService{},
		UserService: &MockUserService{},
		PostService: &MockPostService{},
		PageService: &MockPageService{},
		UserRepo:    &MockUserRepository{},
		PostRepo:    &MockPostRepository{},
		StatsRepo:   &MockStatsRepository{},
		Cfg:         cfg,
		Validate:    validator.New(),
	}
}

func assertJSONError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedError string) {
	t.Helper()

	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["error"], expectedError)
}

func assertJSONStatus(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int) {
	t.Helper()

	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}
