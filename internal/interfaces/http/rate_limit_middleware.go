package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/karamansaglik/pharmacy-api/internal/application/dto"
	"github.com/redis/go-redis/v9"
)

const (
	rateLimitWindow = time.Minute
	rateLimitCount  = 10
)

// RateLimit is a fixed-window per-IP limiter on Redis (INCR + EXPIRE), used on
// the auth endpoints. With a nil client or a Redis error the request passes.
func RateLimit(rdb *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rdb == nil {
			return c.Next()
		}
		key := "rate_limit:" + c.IP() + ":" + c.Path()
		count, err := rdb.Incr(c.Context(), key).Result()
		if err != nil {
			return c.Next()
		}
		if count == 1 {
			rdb.Expire(c.Context(), key, rateLimitWindow)
		}
		if count > rateLimitCount {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "too many requests, try again later",
			})
		}
		return c.Next()
	}
}
