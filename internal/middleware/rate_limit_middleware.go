package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/models/dto"
)

// clientState tracks one client's request count inside the current window.
type clientState struct {
	mu           sync.Mutex
	lastRequest  time.Time
	requestCount int
}

// RateLimiter is a fixed-window per-IP limiter.
type RateLimiter struct {
	maxRequests int
	window      time.Duration

	mu      sync.Mutex
	clients map[string]*clientState
}

// NewRateLimiter creates a limiter allowing maxRequests per window per
// client IP and starts the stale-entry cleanup loop.
func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		maxRequests: maxRequests,
		window:      window,
		clients:     make(map[string]*clientState),
	}
	go rl.cleanup()
	return rl
}

// Limit is the gin middleware enforcing the window.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		rl.mu.Lock()
		state, exists := rl.clients[ip]
		if !exists {
			state = &clientState{}
			rl.clients[ip] = state
		}
		rl.mu.Unlock()

		state.mu.Lock()
		if time.Since(state.lastRequest) > rl.window {
			state.requestCount = 0
			state.lastRequest = time.Now()
		}
		state.requestCount++
		exceeded := state.requestCount > rl.maxRequests
		state.mu.Unlock()

		if exceeded {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewErrorResponse(dto.ErrorCodeTooManyRequests, "Too many requests", c.Request.URL.Path))
			return
		}

		c.Next()
	}
}

// cleanup drops clients idle for two full windows so the map cannot grow
// without bound.
func (rl *RateLimiter) cleanup() {
	for range time.Tick(rl.window) {
		rl.mu.Lock()
		for ip, state := range rl.clients {
			state.mu.Lock()
			if time.Since(state.lastRequest) > 2*rl.window {
				delete(rl.clients, ip)
			}
			state.mu.Unlock()
		}
		rl.mu.Unlock()
	}
}
