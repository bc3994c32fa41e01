package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/webcraftstudio/webcraft/internal/utils"
)

// RateLimitConfig defines configuration for the rate limiter
type RateLimitConfig struct {
	// Requests per second
	RPS int
	// Burst size (number of requests that can be made in a single burst)
	Burst int
	// PerClient gives every client IP its own bucket
	PerClient bool
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterSet hands out limiters keyed by client IP and forgets idle ones
type limiterSet struct {
	mu       sync.Mutex
	config   RateLimitConfig
	clients  map[string]*clientLimiter
	lastScan time.Time
}

const idleLimiterTTL = 10 * time.Minute

func (s *limiterSet) get(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if now.Sub(s.lastScan) > idleLimiterTTL {
		for k, cl := range s.clients {
			if now.Sub(cl.lastSeen) > idleLimiterTTL {
				delete(s.clients, k)
			}
		}
		s.lastScan = now
	}

	cl, ok := s.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(s.config.RPS), s.config.Burst)}
		s.clients[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

// RateLimitMiddleware creates a new rate limiting middleware with the given configuration
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	// Create a new limiter with the given rate and burst
	global := rate.NewLimiter(rate.Limit(config.RPS), config.Burst)
	set := &limiterSet{config: config, clients: make(map[string]*clientLimiter), lastScan: time.Now()}

	return func(c *gin.Context) {
		limiter := global
		if config.PerClient {
			limiter = set.get(utils.GetRealIP(c))
		}

		// Check if we can make a request
		if !limiter.Allow() {
			// If not, return 429 Too Many Requests
			c.Header("Retry-After", "1")
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}

		// Set rate limit headers
		c.Header("X-RateLimit-Limit", strconv.Itoa(config.RPS))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))

		c.Next()
	}
}
