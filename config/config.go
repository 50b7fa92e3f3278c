package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string
	AppEnv  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret string

	UploadDir string

	SMTPHost  string
	SMTPPort  string
	SMTPUser  string
	SMTPPass  string
	EmailFrom string
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	// .env opsional; di server production semua lewat env asli
	_ = godotenv.Load()

	return &Config{
		AppPort: get("APP_PORT", "3001"),
		AppEnv:  get("APP_ENV", "dev"),

		DBHost:     get("DB_HOST", "localhost"),
		DBPort:     get("DB_PORT", "5432"),
		DBUser:     get("DB_USER", "postgres"),
		DBPassword: get("DB_PASS", "postgres"),
		DBName:     get("DB_DATABASE", "gsjs_volunteer"),
		DBSSLMode:  get("DB_SSLMODE", "disable"),

		JWTSecret: get("JWT_SECRET", "your-secret-key"),

		UploadDir: get("UPLOAD_DIR", "uploads"),

		SMTPHost:  get("SMTP_HOST", "localhost"),
		SMTPPort:  get("SMTP_PORT", "1025"),
		SMTPUser:  get("SMTP_USER", ""),
		SMTPPass:  get("SMTP_PASS", ""),
		EmailFrom: get("EMAIL_FROM", "no-reply@gsjs.com"),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}
