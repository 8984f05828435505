// internal/middleware/rate_limit.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"productshop/internal/utils"
)

// clientLimiter tracks one caller's token bucket. Entries idle for
// longer than clientIdleTTL are swept out.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const clientIdleTTL = 3 * time.Minute

type RateLimiter struct {
	clients map[string]*clientLimiter
	mtx     sync.Mutex
	rate    rate.Limit
	burst   int
}

func NewRateLimiter(r rate.Limit, b int) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*clientLimiter),
		rate:    r,
		burst:   b,
	}

	go rl.sweepClients()

	return rl
}

func (rl *RateLimiter) sweepClients() {
	for {
		time.Sleep(time.Minute)
		rl.mtx.Lock()
		for ip, client := range rl.clients {
			if time.Since(client.lastSeen) > clientIdleTTL {
				delete(rl.clients, ip)
			}
		}
		rl.mtx.Unlock()
	}
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mtx.Lock()
	defer rl.mtx.Unlock()

	client, exists := rl.clients[ip]
	if !exists {
		client = &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.clients[ip] = client
	}
	client.lastSeen = time.Now()
	return client.limiter
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiterFor(c.ClientIP()).Allow() {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "RATE_LIMITED",
				"Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// Per-IP limits: the general tier covers browsing and the cart, the
// auth tier slows credential guessing, the upload tier bounds product
// image traffic.
var (
	generalLimiter = NewRateLimiter(rate.Every(time.Second), 10)
	authLimiter    = NewRateLimiter(rate.Every(time.Minute), 5)
	uploadLimiter  = NewRateLimiter(rate.Every(time.Minute), 10)
)

func GeneralRateLimit() gin.HandlerFunc {
	return generalLimiter.Middleware()
}

func AuthRateLimit() gin.HandlerFunc {
	return authLimiter.Middleware()
}

func UploadRateLimit() gin.HandlerFunc {
	return uploadLimiter.Middleware()
}
