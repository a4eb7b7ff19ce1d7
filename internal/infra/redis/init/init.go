package infra_redis_init

import (
	"fmt"
	"log"

	"github.com/go-redis/redis"
	"github.com/humanbelnik/flowquest/core/internal/config"
)

func Addr(cfg config.RedisCache) string {
	return fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
}

// MustEstablishConn is used only when sessions or fan-out are backed by redis.
func MustEstablishConn(cfg config.RedisCache) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     Addr(cfg),
		Password: cfg.Password,
		DB:       0,
	})

	if err := client.Ping().Err(); err != nil {
		log.Fatalf("redis ping %s failed: %v", Addr(cfg), err)
	}

	return client
}
