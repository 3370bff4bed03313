package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

type noopLogger struct{}

func (noopLogger) Warn(string, ...interface{}) {}

func newProtectedRouter(adminKey string) *mux.Router {
	r := mux.NewRouter()
	r.Use(AdminAuth(adminKey, noopLogger{}))
	r.HandleFunc("/admin/bookings", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func TestAdminAuth(t *testing.T) {
	router := newProtectedRouter("secret-key")

	req := httptest.NewRequest("GET", "/admin/bookings", nil)
	req.Header.Set("X-Admin-Key", "secret-key")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminAuth_Rejected(t *testing.T) {
	router := newProtectedRouter("secret-key")

	// Без ключа
	req := httptest.NewRequest("GET", "/admin/bookings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// С неверным ключом
	req = httptest.NewRequest("GET", "/admin/bookings", nil)
	req.Header.Set("X-Admin-Key", "wrong")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
