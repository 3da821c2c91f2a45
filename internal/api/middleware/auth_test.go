package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/auth"
)

func testManager(t *testing.T) (*auth.Manager, string) {
	t.Helper()

	hash, err := auth.HashPassword("secret")
	require.NoError(t, err)

	manager := auth.NewManager("admin", hash, "test-signing-key", time.Hour)
	token, err := manager.Login("admin", "secret")
	require.NoError(t, err)

	return manager, token
}

func TestAdminAuth_ValidToken(t *testing.T) {
	manager, token := testManager(t)

	var gotUsername string
	handler := AdminAuth(manager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUsername, _ = AdminUsername(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reservations", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", gotUsername)
}

func TestAdminAuth_Rejections(t *testing.T) {
	manager, token := testManager(t)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"empty token", "Bearer "},
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong scheme case", "bearer " + token},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := AdminAuth(manager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reservations", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, called)
		})
	}
}
