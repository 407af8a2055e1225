package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ICE-TOOLS/icefit/models"
)

// Config is built once in main and handed to every component. Nothing else
// in the codebase reads the process environment.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr     string
	RedisPassword string

	JWTSecret string

	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	HTTPAddr string
}

// Load reads .env when present, then the environment.
func Load() (*Config, error) {
	// Missing .env is fine in deployed environments.
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        getenv("DB_USER", "postgres"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        getenv("DB_NAME", "icefit"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getenv("GEMINI_MODEL", "gemini-pro"),
		GeminiBaseURL: getenv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// OpenDB connects to postgres and migrates the schema.
func OpenDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.WeeklyMealPlan{},
		&models.DayProgress{},
	); err != nil {
		return nil, fmt.Errorf("auto-migrate failed: %w", err)
	}
	return db, nil
}
