package controller

import (
	"net/http"
	"utilbox/pkg/logger"

	"go.uber.org/zap"
)

// WithRecovery returns a middleware that recovers from panics in next, logs
// them and answers 500 with a JSON error body.
func WithRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if p == http.ErrAbortHandler { //nolint: errorlint
				panic(p)
			}

			logger.Error(r.Context(), "recovered from panic",
				zap.Any("panic", p),
				zap.String("url", r.URL.String()))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"code":"INTERNAL","message":"internal error"}`))
		}()

		next.ServeHTTP(w, r)
	})
}
