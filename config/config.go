package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var once sync.Once

// Config returns the value of an environment variable, loading .env on first use.
func Config(key string) string {
	once.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("No .env file found, using process environment")
		}
	})
	return os.Getenv(key)
}

func ConfigOrDefault(key, fallback string) string {
	if value := Config(key); value != "" {
		return value
	}
	return fallback
}
