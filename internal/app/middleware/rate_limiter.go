package middleware

import (
	"sync"
	"time"

	"github.com/endri-fradomos/local-api/internal/error/code"
	"github.com/endri-fradomos/local-api/internal/error/response"

	"github.com/gin-gonic/gin"
)

// TokenBucket is a simple token bucket rate limiter
type TokenBucket struct {
	rate       float64   // tokens added per second
	capacity   int       // bucket capacity
	tokens     float64   // current token count
	lastRefill time.Time // last refill time
	mu         sync.Mutex
}

// NewTokenBucket creates a new token bucket limiter
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// Allow tries to take a token
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now

	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}

	return false
}

var (
	ipLimiters     = make(map[string]*TokenBucket)
	ipLimitersMu   sync.RWMutex
	pathLimiters   = make(map[string]*TokenBucket)
	pathLimitersMu sync.RWMutex
)

// RateLimiterConfig configures the rate limiting middleware
type RateLimiterConfig struct {
	Rate       float64                   // allowed requests per second
	Burst      int                       // allowed burst size
	ExpiryTime time.Duration             // limiter expiry
	LimitType  string                    // "ip", "path" or "combined"
	KeyFunc    func(*gin.Context) string // custom key function
}

// DefaultRateLimiterConfig is the default limiter configuration
var DefaultRateLimiterConfig = RateLimiterConfig{
	Rate:       1,
	Burst:      5,
	ExpiryTime: 1 * time.Hour,
	LimitType:  "ip",
	KeyFunc:    nil,
}

func getIPLimiter(ip string, cfg RateLimiterConfig) *TokenBucket {
	ipLimitersMu.RLock()
	limiter, exists := ipLimiters[ip]
	ipLimitersMu.RUnlock()

	if !exists {
		limiter = NewTokenBucket(cfg.Rate, cfg.Burst)
		ipLimitersMu.Lock()
		ipLimiters[ip] = limiter
		ipLimitersMu.Unlock()

		if cfg.ExpiryTime > 0 {
			go func() {
				time.Sleep(cfg.ExpiryTime)
				ipLimitersMu.Lock()
				delete(ipLimiters, ip)
				ipLimitersMu.Unlock()
			}()
		}
	}

	return limiter
}

func getPathLimiter(path string, cfg RateLimiterConfig) *TokenBucket {
	pathLimitersMu.RLock()
	limiter, exists := pathLimiters[path]
	pathLimitersMu.RUnlock()

	if !exists {
		limiter = NewTokenBucket(cfg.Rate, cfg.Burst)
		pathLimitersMu.Lock()
		pathLimiters[path] = limiter
		pathLimitersMu.Unlock()
	}

	return limiter
}

// RateLimiter creates the rate limiting middleware
func RateLimiter(config ...RateLimiterConfig) gin.HandlerFunc {
	var cfg RateLimiterConfig
	if len(config) > 0 {
		cfg = config[0]
	} else {
		cfg = DefaultRateLimiterConfig
	}

	if cfg.Rate <= 0 {
		cfg.Rate = DefaultRateLimiterConfig.Rate
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultRateLimiterConfig.Burst
	}
	if cfg.LimitType == "" {
		cfg.LimitType = DefaultRateLimiterConfig.LimitType
	}

	return func(c *gin.Context) {
		var limiter *TokenBucket

		switch cfg.LimitType {
		case "ip":
			limiter = getIPLimiter(c.ClientIP(), cfg)
		case "path":
			limiter = getPathLimiter(c.Request.URL.Path, cfg)
		case "combined":
			key := c.ClientIP() + ":" + c.Request.URL.Path
			limiter = getIPLimiter(key, cfg)
		default:
			if cfg.KeyFunc != nil {
				limiter = getIPLimiter(cfg.KeyFunc(c), cfg)
			} else {
				limiter = getIPLimiter(c.ClientIP(), cfg)
			}
		}

		if !limiter.Allow() {
			response.FailWithMessage(c, code.ErrTooManyRequests, "too many requests, slow down", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// IPRateLimiter limits by client IP
func IPRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{
		Rate:      rate,
		Burst:     burst,
		LimitType: "ip",
	})
}

// PathRateLimiter limits by request path
func PathRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{
		Rate:      rate,
		Burst:     burst,
		LimitType: "path",
	})
}

// CombinedRateLimiter limits by client IP and path combined
func CombinedRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{
		Rate:      rate,
		Burst:     burst,
		LimitType: "combined",
	})
}
