// SPDX-License-Identifier: MIT

package api

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	seqlog "github.com/ManuGH/seqconf/internal/log"
)

// statusRecorder captures the response status for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// recoverer converts handler panics into 500 responses.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger := seqlog.WithComponent("api")
				logger.Error().
					Interface("panic", rec).
					Str(seqlog.FieldPath, r.URL.Path).
					Msg("handler panic")
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

const requestIDHeader = "X-Request-Id"

// requestID attaches a request ID, preferring a caller-supplied one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = newRequestID()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func newRequestID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "unknown"
	}
	return hex.EncodeToString(b[:])
}

// accessLog logs each request with latency and status, and feeds the HTTP
// metrics.
func accessLog(next http.Handler) http.Handler {
	logger := seqlog.WithComponent("api")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		httpRequestsTotal.WithLabelValues(r.Method, statusClass(rec.status)).Inc()
		httpRequestDuration.Observe(elapsed.Seconds())

		logger.Info().
			Str(seqlog.FieldMethod, r.Method).
			Str(seqlog.FieldPath, r.URL.Path).
			Int(seqlog.FieldStatus, rec.status).
			Dur("duration", elapsed).
			Str(seqlog.FieldRequestID, rec.Header().Get(requestIDHeader)).
			Msg("request")
	})
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
