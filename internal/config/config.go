package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Redis      RedisConfig
	Cloudinary CloudinaryConfig
}

type AppConfig struct {
	AppName      string
	Environment  string
	HTTPPort     string
	SeedDemoData bool
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout      time.Duration
	PoolMaxConns        int32
	PoolMinConns        int32
	PoolMaxConnLifetime time.Duration
	PoolMaxConnIdleTime time.Duration
}

type JWTConfig struct {
	Secret    string
	ExpiresIn time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	CacheTTL time.Duration
}

type CloudinaryConfig struct {
	URL string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:      req("APP_NAME"),
		Environment:  req("APP_ENV"),
		HTTPPort:     req("HTTP_PORT"),
		SeedDemoData: strings.EqualFold(opt("SEED_DEMO_DATA"), "true"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:      durationOrDefault(opt("DB_CONNECT_TIMEOUT"), 5*time.Second),
		PoolMaxConns:        int32OrDefault(opt("DB_POOL_MAX_CONNS"), 0),
		PoolMinConns:        int32OrDefault(opt("DB_POOL_MIN_CONNS"), 0),
		PoolMaxConnLifetime: durationOrDefault(opt("DB_POOL_MAX_CONN_LIFETIME"), 0),
		PoolMaxConnIdleTime: durationOrDefault(opt("DB_POOL_MAX_CONN_IDLE_TIME"), 0),
	}

	cfg.JWT = JWTConfig{
		Secret:    req("JWT_SECRET"),
		ExpiresIn: durationOrDefault(opt("JWT_EXPIRES_IN"), 30*24*time.Hour),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		CacheTTL: durationOrDefault(opt("REDIS_CACHE_TTL"), 5*time.Minute),
	}

	cfg.Cloudinary = CloudinaryConfig{
		URL: opt("CLOUDINARY_URL"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func durationOrDefault(raw string, def time.Duration) time.Duration {
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def
	}
	return d
}

func int32OrDefault(raw string, def int32) int32 {
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return def
	}
	return int32(v)
}
