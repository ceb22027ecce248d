package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avkostin/studio-booking/internal/api/handlers"
)

const msgSessionRequired = "требуется вход администратора"

// SessionVerifier проверяет токен административной сессии
type SessionVerifier interface {
	Verify(raw string) error
}

type Logger interface {
	Warn(format string, v ...interface{})
}

// AdminSession пропускает запрос только при валидной cookie сессии администратора
// Отсутствующая, просроченная или подделанная cookie дает 401
func AdminSession(verifier SessionVerifier, cookieName string, log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil {
				log.Warn("AdminSession: missing session cookie for %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgSessionRequired)
				return
			}

			if err := verifier.Verify(cookie.Value); err != nil {
				log.Warn("AdminSession: invalid session token for %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgSessionRequired)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
