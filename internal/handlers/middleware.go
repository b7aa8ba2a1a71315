package handlers

import (
	"fmt"
	"net"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.size += n
	return n, err
}

// Instrument logs every request and records it in the HTTP metrics.
func (e *Env) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r)

		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		latency := time.Since(start)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		e.Metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, fmt.Sprint(rec.status)).Inc()
		e.Metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(latency.Seconds())

		event := e.Log.Info()
		if rec.status >= 400 {
			event = e.Log.Warn()
		}
		if rec.status >= 500 {
			event = e.Log.Error()
		}

		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("query", r.URL.RawQuery).
			Int("status", rec.status).
			Dur("latency", latency).
			Str("ip", clientIP(r)).
			Int("body_size", rec.size).
			Str("role", e.requestRole(r)).
			Msg("request")
	})
}

// requestRole names the signed-in role behind the request, or "anonymous".
func (e *Env) requestRole(r *http.Request) string {
	if e.Sessions == nil {
		return "anonymous"
	}
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return "anonymous"
	}
	s, err := e.Sessions.Get(c.Value)
	if err != nil {
		return "anonymous"
	}
	return string(s.Role)
}

// Recover turns a panic into a 500 and logs the stack.
func (e *Env) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				e.Log.Error().
					Str("panic", fmt.Sprintf("%v", v)).
					Str("stack", string(debug.Stack())).
					Msg("panic recovered")
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// RequireSession lets signed-in browsers through and sends everyone
// else to the login page.
func (e *Env) RequireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(sessionCookie)
		if err == nil {
			if _, err := e.Sessions.Get(c.Value); err == nil {
				next(w, r.WithContext(withSessionID(r.Context(), c.Value)))
				return
			}
		}

		if isHTMX(r) {
			w.Header().Set("HX-Redirect", "/login")
			w.WriteHeader(http.StatusOK)
			return
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}

// OptionalSession attaches the session when there is a live one.
func (e *Env) OptionalSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(sessionCookie); err == nil {
			if _, err := e.Sessions.Get(c.Value); err == nil {
				r = r.WithContext(withSessionID(r.Context(), c.Value))
			}
		}
		next(w, r)
	}
}

// IPRateLimiter hands out one token bucket per client IP.
type IPRateLimiter struct {
	mu    sync.Mutex
	ips   map[string]*rateLimiterEntry
	r     rate.Limit
	burst int
	now   func() time.Time
}

type rateLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewIPRateLimiter(r rate.Limit, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		ips:   make(map[string]*rateLimiterEntry),
		r:     r,
		burst: burst,
		now:   time.Now,
	}
}

// PerMinute builds a limiter allowing n requests a minute with a burst of n.
func PerMinute(n int) *IPRateLimiter {
	return NewIPRateLimiter(rate.Limit(float64(n)/60.0), n)
}

func (rl *IPRateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	entry, ok := rl.ips[ip]
	if !ok {
		entry = &rateLimiterEntry{limiter: rate.NewLimiter(rl.r, rl.burst)}
		rl.ips[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

// Prune drops limiters not used within idle.
func (rl *IPRateLimiter) Prune(idle time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for ip, entry := range rl.ips {
		if now.Sub(entry.lastSeen) > idle {
			delete(rl.ips, ip)
		}
	}
}

func (e *Env) RateLimit(rl *IPRateLimiter, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !rl.Allow(ip) {
			e.Log.Warn().Str("ip", ip).Str("path", r.URL.Path).Msg("rate limit exceeded")
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
