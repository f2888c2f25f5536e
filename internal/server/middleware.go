// Request logging and rate limiting middleware.

package server

import (
	"log/slog"
	"net/http"
	"time"

	apierrors "github.com/lorekeep/lorekeep/internal/errors"
	"github.com/lorekeep/lorekeep/internal/server/ratelimit"
	"github.com/lorekeep/lorekeep/internal/storage"
	"github.com/lorekeep/lorekeep/internal/utils"
)

// Limiters holds the per-tier rate limiters. Reads and writes get separate
// budgets; a zero-rate limiter disables its tier.
type Limiters struct {
	Read  *ratelimit.Limiter
	Write *ratelimit.Limiter
}

// NewLimiters builds the limiters from the configured per-minute rates.
func NewLimiters(cfg *storage.Config) *Limiters {
	return &Limiters{
		Read:  ratelimit.NewLimiter(cfg.RateLimits.ReadRatePerMin),
		Write: ratelimit.NewLimiter(cfg.RateLimits.WriteRatePerMin),
	}
}

// Close stops both limiters.
func (l *Limiters) Close() {
	l.Read.Close()
	l.Write.Close()
}

// Middleware applies the read budget to GET/HEAD requests and the write
// budget to everything else.
func (l *Limiters) Middleware(next http.Handler) http.Handler {
	reject := func(w http.ResponseWriter, r *http.Request) {
		utils.RespondError(w, apierrors.RateLimited())
	}
	read := ratelimit.Middleware(l.Read, reject, next)
	write := ratelimit.Middleware(l.Write, reject, next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead:
			read.ServeHTTP(w, r)
		default:
			write.ServeHTTP(w, r)
		}
	})
}

// statusRecorder captures the response status for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Unwrap returns the underlying ResponseWriter for middleware that needs it.
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// loggingMiddleware logs one line per request through slog.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Info("Request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).Round(time.Microsecond),
			"remote", ratelimit.ClientKey(r))
	})
}
