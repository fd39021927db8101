package preview

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CORS allows any origin, as the firmware does for its endpoints.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		next.ServeHTTP(w, r)
	})
}

// LoggerMiddleware returns a middleware that logs request info.
func LoggerMiddleware(logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			correlationID := r.Header.Get("X-Correlation-ID")
			if correlationID == "" {
				correlationID = uuid.New().String()
			}
			w.Header().Set("X-Correlation-ID", correlationID)

			logger.WithFields(logrus.Fields{
				"url":           r.URL.String(),
				"method":        r.Method,
				"remoteAddr":    r.RemoteAddr,
				"correlationID": correlationID,
			}).Info("Incoming HTTP request")

			next.ServeHTTP(w, r)
		})
	}
}
