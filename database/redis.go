package database

import (
	"context"
	"log"

	"hotel_roomservice/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis opens the client used for session carts and submission locks.
func ConnectRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.ConfigOrDefault("REDIS_ADDR", "localhost:6379"),
		Password: config.Config("REDIS_PASSWORD"),
	})

	if err := Redis.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis ping failed: %v", err)
	}
}
