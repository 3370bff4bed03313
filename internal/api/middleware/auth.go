package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/caribeazul/CAB-BookingService/internal/api/handlers"
)

// adminKeyHeader заголовок с ключом оператора
const adminKeyHeader = "X-Admin-Key"

type Logger interface {
	Warn(format string, v ...interface{})
}

// AdminAuth middleware закрывает админские маршруты статическим ключом оператора
// Ключ сравнивается за константное время
func AdminAuth(adminKey string, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(adminKeyHeader)
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(adminKey)) != 1 {
				logger.Warn("AdminAuth: rejected %s %s", r.Method, r.URL.Path)
				handlers.RespondError(w, http.StatusUnauthorized, "invalid or missing admin key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
