package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port        string
	DatabaseURL string

	RazorpayKeyID     string
	RazorpayKeySecret string
}

const (
	defaultRazorpayKeyID  = "rzp_test_default"
	defaultRazorpaySecret = "secret_default"
)

// Load reads the .env file if present and builds the Config. The Razorpay
// defaults only exist so the service can boot locally; they can never
// authorize a real order.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       getEnv("DATABASE_URL", "postgres://localhost:5432/heyyguru?sslmode=disable"),
		RazorpayKeyID:     getEnv("RAZORPAY_KEY_ID", defaultRazorpayKeyID),
		RazorpayKeySecret: getEnv("RAZORPAY_KEY_SECRET", defaultRazorpaySecret),
	}

	if cfg.RazorpayKeyID == defaultRazorpayKeyID || cfg.RazorpayKeySecret == defaultRazorpaySecret {
		log.Println("Warning: using default Razorpay credentials, set RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
