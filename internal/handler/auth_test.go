package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"friction-log/internal/config"
	"friction-log/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthDisabledByDefault(t *testing.T) {
	r := newTestRouter(t, &config.Config{})
	w := doJSON(t, r, http.MethodGet, "/api/friction-items", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthEnabled(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	cfg := &config.Config{Auth: config.AuthConfig{Username: "ana", PasswordHash: string(hash)}}
	r := newTestRouter(t, cfg)

	// protected without a token, health stays open
	w := doJSON(t, r, http.MethodGet, "/api/friction-items", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/login", map[string]string{"username": "ana", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/login", map[string]string{"username": "bob", "password": "hunter2"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/login", map[string]string{"username": "ana", "password": "hunter2"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp model.LoginResponse
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "ana", resp.User.Name)

	req := httptest.NewRequest(http.MethodGet, "/api/friction-items", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	// token issued for 7 days renews on use
	assert.Empty(t, rec.Header().Get("X-New-Token"))
}
