package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	Env           string
	LogLevel      string
	DBUrl         string
	JWTSecret     string
	AllowedOrigin string
	FrontendURL   string // used for sitemap and handoff links
	// Auth
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
	// DB Config
	DBMaxConns        int32
	DBMinConns        int32
	DBMaxConnIdleTime time.Duration
	MigrationsPath    string
	// Object Storage (any S3-compatible endpoint)
	S3Endpoint        string
	S3AccessKeyID     string
	S3AccessKeySecret string
	S3BucketName      string
	S3PublicURL       string
	S3Region          string
	S3UploadTimeout   time.Duration
	// Cache
	CacheArtworkTTL time.Duration
	CacheSitemapTTL time.Duration
	// Session selection (follows, favourites, cart)
	SessionTTL time.Duration
	// Upload Configuration
	MaxUploadSizeMB int64
	// Messaging handoff for checkout and tickets
	MessagingBaseURL string
	MessagingPhone   string
	// Rate limiting
	RateLimitRPS   float64
	RateLimitBurst int
}

func LoadConfig() *Config {
	// 1. Check if a specific config file is requested via env var
	configFile := os.Getenv("CONFIG_FILE")
	if configFile != "" {
		if err := godotenv.Load(configFile); err != nil {
			log.Printf("Warning: Failed to load config file '%s': %v", configFile, err)
		} else {
			log.Printf("Loaded configuration from %s", configFile)
		}
	} else {
		// 2. Default fallback: .env for local dev, system env otherwise
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found or error loading it, relying on system env vars")
		}
	}

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		DBUrl:              getEnv("DB_DSN", ""),
		JWTSecret:          getEnv("JWT_SECRET", "default_secret_CHANGE_ME"),
		AllowedOrigin:      getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:3000"),
		AccessTokenExpiry:  getDurationEnv("ACCESS_TOKEN_EXPIRY", time.Hour*24),    // Default 24h
		RefreshTokenExpiry: getDurationEnv("REFRESH_TOKEN_EXPIRY", time.Hour*24*7), // Default 7d

		DBMaxConns:        getInt32Env("DB_MAX_CONNS", 20),
		DBMinConns:        getInt32Env("DB_MIN_CONNS", 2),
		DBMaxConnIdleTime: getDurationEnv("DB_MAX_CONN_IDLE_TIME", time.Minute*15),
		MigrationsPath:    getEnv("MIGRATIONS_PATH", "db/migrations"),

		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3AccessKeySecret: getEnv("S3_ACCESS_KEY_SECRET", ""),
		S3BucketName:      getEnv("S3_BUCKET_NAME", ""),
		S3PublicURL:       getEnv("S3_PUBLIC_URL", ""),
		S3Region:          getEnv("S3_REGION", "auto"),
		S3UploadTimeout:   getDurationEnv("S3_UPLOAD_TIMEOUT", 30*time.Second),

		// Cache defaults: 5m artwork listings, 6h sitemap
		CacheArtworkTTL: getDurationEnv("CACHE_ARTWORK_TTL", 5*time.Minute),
		CacheSitemapTTL: getDurationEnv("CACHE_SITEMAP_TTL", 6*time.Hour),

		SessionTTL: getDurationEnv("SESSION_TTL", 12*time.Hour),

		MaxUploadSizeMB: getInt64Env("MAX_UPLOAD_SIZE_MB", 10),

		MessagingBaseURL: getEnv("MESSAGING_BASE_URL", "https://wa.me/"),
		MessagingPhone:   getEnv("MESSAGING_PHONE", ""),

		RateLimitRPS:   getFloatEnv("RATE_LIMIT_RPS", 20),
		RateLimitBurst: getIntEnv("RATE_LIMIT_BURST", 40),
	}

	cfg.Validate()
	return cfg
}

func (c *Config) Validate() {
	if c.DBUrl == "" {
		log.Fatal("CRITICAL: DB_DSN environment variable is required")
	}
	if c.S3BucketName == "" {
		log.Fatal("CRITICAL: S3_BUCKET_NAME is required")
	}
	if c.JWTSecret == "default_secret_CHANGE_ME" {
		log.Println("WARNING: Using default JWT secret. Setting up for failure in production.")
	}
	if c.MessagingPhone == "" {
		log.Println("WARNING: MESSAGING_PHONE is empty, handoff links will not target a recipient")
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev" || c.Env == ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s, using fallback", key)
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
		log.Printf("Invalid int for %s, using fallback", key)
	}
	return fallback
}

func getInt64Env(key string, fallback int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
		log.Printf("Invalid int64 for %s, using fallback", key)
	}
	return fallback
}
