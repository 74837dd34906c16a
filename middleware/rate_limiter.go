package middleware

import (
	"net/http"
	"sync"
	"time"

	"hogarlink/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const fallbackRequestsPerMin = 100

// limiterStore keeps one token bucket per client IP.
var limiterStore = struct {
	sync.Mutex
	byIP map[string]*rate.Limiter
}{byIP: make(map[string]*rate.Limiter)}

func limiterFor(ip string) *rate.Limiter {
	perMin := config.AppConfig.MaxRequestsPerMin
	if perMin <= 0 {
		perMin = fallbackRequestsPerMin
	}

	limiterStore.Lock()
	defer limiterStore.Unlock()

	limiter, ok := limiterStore.byIP[ip]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin)
		limiterStore.byIP[ip] = limiter
	}
	return limiter
}

// RateLimitMiddleware limits each client IP to MAX_REQUESTS_PER_MIN requests
// per minute. The per-IP bucket is created on first sight with the rate
// configured at that moment.
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := clientIP(c)
		if !limiterFor(ip).Allow() {
			zap.L().Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}
