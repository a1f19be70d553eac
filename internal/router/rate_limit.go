package router

import (
	"fmt"
	"strings"

	"github.com/jipgi-intake/internal/http/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitRule 로그인 제한 규칙
type RateLimitRule struct {
	Prefix        string
	WindowSeconds int
	MaxRequests   int
}

var rateLimitScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("TTL", KEYS[1])
return {current, ttl}
`)

// RateLimitMiddleware Redis 고정 윈도 제한 미들웨어.
// 클라이언트가 nil이면(Redis 비활성) 통과 모드다.
func RateLimitMiddleware(client *redis.Client, rule RateLimitRule) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || rule.WindowSeconds <= 0 || rule.MaxRequests <= 0 {
			c.Next()
			return
		}

		key := c.ClientIP()
		if strings.TrimSpace(rule.Prefix) != "" {
			key = fmt.Sprintf("%s:%s", rule.Prefix, key)
		}

		result, err := rateLimitScript.Run(c.Request.Context(), client, []string{key}, rule.WindowSeconds).Result()
		if err != nil {
			response.Error(c, response.CodeInternal, "잠시 후 다시 시도해 주세요")
			c.Abort()
			return
		}
		values, ok := result.([]interface{})
		if !ok || len(values) < 1 {
			response.Error(c, response.CodeInternal, "잠시 후 다시 시도해 주세요")
			c.Abort()
			return
		}
		count, ok := toInt64(values[0])
		if !ok {
			response.Error(c, response.CodeInternal, "잠시 후 다시 시도해 주세요")
			c.Abort()
			return
		}
		if count > int64(rule.MaxRequests) {
			response.Error(c, response.CodeTooManyRequests, "로그인 시도가 너무 많습니다")
			c.Abort()
			return
		}

		c.Next()
	}
}

func toInt64(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case string:
		var parsed int64
		_, err := fmt.Sscanf(v, "%d", &parsed)
		return parsed, err == nil
	default:
		return 0, false
	}
}
