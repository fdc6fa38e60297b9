package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	CacheBackend string // "memory" or "redis"
	RedisAddr    string

	UploadDir       string
	ProductsPerPage int

	PaymentAPIURL string
	PaymentAPIKey string
}

func Load() Config {
	return Config{
		Port:            getEnv("PORT", "4000"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "3306"),
		DBUser:          getEnv("DB_USER", "root"),
		DBPass:          getEnv("DB_PASS", ""),
		DBName:          getEnv("DB_NAME", "shopmatic"),
		CacheBackend:    getEnv("CACHE_BACKEND", "memory"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		ProductsPerPage: getEnvInt("PRODUCT_PER_PAGE", 8),
		PaymentAPIURL:   getEnv("PAYMENT_API_URL", "https://api.stripe.com"),
		PaymentAPIKey:   getEnv("PAYMENT_API_KEY", ""),
	}
}

// DSN builds the MySQL connection string. parseTime is required so that
// created_at columns scan into time.Time.
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
