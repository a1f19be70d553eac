package cache

import (
	"fmt"
	"strings"

	"github.com/jipgi-intake/internal/config"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client
var redisPrefix string
var redisEnabled bool

// InitRedis Redis 클라이언트 초기화. 비활성이면 의존 기능(로그인 제한)이
// 조용히 통과 모드로 동작한다.
func InitRedis(cfg *config.RedisConfig) error {
	if cfg == nil || !cfg.Enabled {
		redisEnabled = false
		return nil
	}
	addr := strings.TrimSpace(cfg.Host)
	if addr == "" {
		addr = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	redisPrefix = strings.TrimSpace(cfg.Prefix)
	if redisPrefix == "" {
		redisPrefix = "jg"
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", addr, port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	redisEnabled = true
	return nil
}

// Enabled 캐시 활성 여부
func Enabled() bool {
	return redisEnabled && redisClient != nil
}

// Client Redis 클라이언트 반환. 비활성이면 nil.
func Client() *redis.Client {
	if !Enabled() {
		return nil
	}
	return redisClient
}

// Prefix 키 접두사 반환
func Prefix() string {
	if redisPrefix == "" {
		return "jg"
	}
	return redisPrefix
}
