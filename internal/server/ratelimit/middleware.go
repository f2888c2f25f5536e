// Provides the HTTP middleware and response headers for rate limiting.

package ratelimit

import (
	"net"
	"net/http"
	"strconv"
)

// WriteHeaders writes rate limit headers to the response. Headers are
// written on all limited responses, success and 429 alike.
func WriteHeaders(w http.ResponseWriter, result Result) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	if !result.Allowed {
		w.Header().Set("Retry-After", strconv.Itoa(int(result.RetryAfter.Seconds())))
	}
}

// ClientKey extracts the bucket key for a request: the client IP without the
// port. Falls back to the whole RemoteAddr when it does not parse.
func ClientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Middleware wraps next with the limiter, rejecting over-limit requests with
// a 429. A nil limiter or an unlimited one passes everything through.
func Middleware(l *Limiter, reject http.HandlerFunc, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l == nil || l.perMin <= 0 {
			next.ServeHTTP(w, r)
			return
		}
		result := l.Allow(ClientKey(r))
		WriteHeaders(w, result)
		if !result.Allowed {
			reject(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
