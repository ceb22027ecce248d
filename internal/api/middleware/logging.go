package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type RequestLogger interface {
	Info(format string, v ...interface{})
}

// Logging пишет строку на каждый завершенный запрос: метод, путь, статус, длительность
func Logging(log RequestLogger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			log.Info("%s %s -> %d (%s)", r.Method, r.URL.Path, rec.status, time.Since(start))
		})
	}
}
