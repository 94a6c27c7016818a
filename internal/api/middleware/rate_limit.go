package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"mbox/internal/errcode"
)

const rateLimitKeyPrefix = "rate:api:"

type redisRateCounter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

func incrWithTTL(ctx context.Context, client redisRateCounter, key string, ttl time.Duration) (int64, error) {
	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		_ = client.Expire(ctx, key, ttl).Err()
	}
	return count, nil
}

// RateLimitMiddleware 按客户端 IP 做每分钟固定窗口限流。
// Redis 不可用时放行请求，只记录告警。
func RateLimitMiddleware(client redisRateCounter, perMinute int, now func() time.Time) gin.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	return func(c *gin.Context) {
		if client == nil || perMinute <= 0 {
			c.Next()
			return
		}

		key := rateLimitKeyPrefix + c.ClientIP() + ":" + now().UTC().Format("200601021504")
		count, err := incrWithTTL(c.Request.Context(), client, key, time.Minute)
		if err != nil {
			LoggerFromContext(c).Warn("rate limit counter unavailable", slog.Any("error", err))
			c.Next()
			return
		}

		if count > int64(perMinute) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"code": errcode.TooManyRequests, "data": nil})
			return
		}
		c.Next()
	}
}
