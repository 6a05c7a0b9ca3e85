package middleware

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/combo-pricing-service/internal/domain/dto"
	"github.com/guttosm/combo-pricing-service/internal/i18n"
)

const defaultNumShards = 16

// visitor is the fixed-window state of one caller.
type visitor struct {
	tokens    int
	lastReset time.Time
}

type rateLimiterShard struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

// RateLimiter is a fixed-window limiter sharded by caller to keep lock
// contention low while every console keystroke hits the pricing endpoints.
type RateLimiter struct {
	shards []*rateLimiterShard
	rate   int
	window time.Duration
	stopCh chan struct{}
	once   sync.Once
	now    func() time.Time
}

// NewRateLimiter creates a limiter allowing rate requests per window per caller.
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	return NewShardedRateLimiter(rate, window, defaultNumShards)
}

// NewShardedRateLimiter creates a limiter with a custom shard count.
func NewShardedRateLimiter(rate int, window time.Duration, numShards int) *RateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}
	if rate <= 0 {
		rate = 1
	}
	if window <= 0 {
		window = time.Minute
	}

	shards := make([]*rateLimiterShard, numShards)
	for i := range shards {
		shards[i] = &rateLimiterShard{visitors: make(map[string]*visitor)}
	}

	rl := &RateLimiter{
		shards: shards,
		rate:   rate,
		window: window,
		stopCh: make(chan struct{}),
		now:    time.Now,
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) shard(identifier string) *rateLimiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(identifier))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// allow consumes one token for identifier.
func (rl *RateLimiter) allow(identifier string) (allowed bool, remaining int, reset time.Duration) {
	s := rl.shard(identifier)
	s.mu.Lock()
	defer s.mu.Unlock()

	now := rl.now()
	v, ok := s.visitors[identifier]
	if !ok || now.Sub(v.lastReset) >= rl.window {
		s.visitors[identifier] = &visitor{tokens: rl.rate - 1, lastReset: now}
		return true, rl.rate - 1, rl.window
	}

	reset = rl.window - now.Sub(v.lastReset)
	if v.tokens <= 0 {
		return false, 0, reset
	}
	v.tokens--
	return true, v.tokens, reset
}

// Middleware limits requests per authenticated subject, or per client IP for
// anonymous callers.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, reset := rl.allow(callerIdentifier(c))

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(reset.Seconds()))))
			message := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewError(dto.ErrCodeRateLimit, message).WithRequestID(GetRequestID(c)))
			return
		}
		c.Next()
	}
}

func callerIdentifier(c *gin.Context) string {
	if claims := GetClaims(c); claims != nil && claims.Subject != "" {
		return "sub:" + claims.Subject
	}
	return "ip:" + c.ClientIP()
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupExpired()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RateLimiter) cleanupExpired() {
	threshold := rl.now().Add(-2 * rl.window)
	for _, s := range rl.shards {
		s.mu.Lock()
		for id, v := range s.visitors {
			if v.lastReset.Before(threshold) {
				delete(s.visitors, id)
			}
		}
		s.mu.Unlock()
	}
}

// Stop ends the cleanup goroutine. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stopCh) })
}

// Visitors returns the number of tracked callers.
func (rl *RateLimiter) Visitors() int {
	total := 0
	for _, s := range rl.shards {
		s.mu.Lock()
		total += len(s.visitors)
		s.mu.Unlock()
	}
	return total
}
