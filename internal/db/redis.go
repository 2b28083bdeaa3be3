package db

import (
	"context"
	"log"
	"os"

	"github.com/go-redis/redis/v8"
)

// ConnectRedis is optional: POS catalog reads work without a cache,
// so a missing REDIS_ADDR returns nil instead of failing startup.
func ConnectRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, catalog cache disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Redis connection failed:", err)
	}

	log.Println("connected to Redis")
	return rdb
}
