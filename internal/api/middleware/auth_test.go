package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avkostin/studio-booking/internal/auth"
)

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func adminRouter(t *testing.T, sessions *auth.SessionManager) *mux.Router {
	t.Helper()

	r := mux.NewRouter()
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(AdminSession(sessions, "admin_session", nopLogger{}))
	admin.HandleFunc("/bookings", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	return r
}

func TestAdminSession_NoCookie(t *testing.T) {
	sessions, err := auth.NewSessionManager("test-secret", time.Hour)
	require.NoError(t, err)
	r := adminRouter(t, sessions)

	req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminSession_InvalidToken(t *testing.T) {
	sessions, err := auth.NewSessionManager("test-secret", time.Hour)
	require.NoError(t, err)
	r := adminRouter(t, sessions)

	req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
	req.AddCookie(&http.Cookie{Name: "admin_session", Value: "forged"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminSession_ValidToken(t *testing.T) {
	sessions, err := auth.NewSessionManager("test-secret", time.Hour)
	require.NoError(t, err)
	r := adminRouter(t, sessions)

	token, err := sessions.Issue()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
	req.AddCookie(&http.Cookie{Name: "admin_session", Value: token})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
