package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// visitorIdleTTL is how long an inactive client keeps its token state before
// the janitor drops it.
const visitorIdleTTL = 10 * time.Minute

// RateLimiter tracks a continuously refilling token balance per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	done     chan struct{}
}

// visitor holds the token balance for one client. Tokens refill at perSecond
// up to the burst capacity; each request spends one.
type visitor struct {
	mu        sync.Mutex
	tokens    float64
	burst     float64
	perSecond float64
	touchedAt time.Time
}

// NewRateLimiter creates a rate limiter whose janitor evicts idle clients
// every cleanupInterval. Call Stop() on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		done:     make(chan struct{}),
	}
	go rl.janitor(cleanupInterval)
	return rl
}

// Stop terminates the janitor goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.done)
}

// Limit returns middleware that caps each client IP at maxPerMinute
// requests, answering 429 with a Retry-After hint once the balance is spent.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			v := rl.visitor(clientKey(r), maxPerMinute)
			if !v.spend() {
				secondsPerToken := 60.0 / float64(maxPerMinute)
				w.Header().Set("Retry-After", strconv.Itoa(int(secondsPerToken)+1))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientKey identifies a client by IP, ignoring the ephemeral source port.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) visitor(key string, maxPerMinute int) *visitor {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if v, ok := rl.visitors[key]; ok {
		return v
	}

	burst := float64(maxPerMinute)
	v := &visitor{
		tokens:    burst,
		burst:     burst,
		perSecond: burst / 60.0,
		touchedAt: time.Now(),
	}
	rl.visitors[key] = v
	return v
}

// spend refills the balance for the time elapsed since the last request and
// takes one token; it reports false when less than a full token is left.
func (v *visitor) spend() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := time.Now()
	v.tokens = min(v.burst, v.tokens+now.Sub(v.touchedAt).Seconds()*v.perSecond)
	v.touchedAt = now

	if v.tokens < 1 {
		return false
	}
	v.tokens--
	return true
}

func (rl *RateLimiter) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-visitorIdleTTL)
			rl.mu.Lock()
			for key, v := range rl.visitors {
				v.mu.Lock()
				idle := v.touchedAt.Before(cutoff)
				v.mu.Unlock()
				if idle {
					delete(rl.visitors, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}
