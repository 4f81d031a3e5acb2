package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBSource      string
	SessionSecret string
	RootDomain    string // e.g. "qrplatform.uz"; subdomain tenants hang off it
	AppEnv        string // "production" enables the Secure cookie flag
	PublicBaseURL string // base for QR menu links
	AdminEmail    string // initial super-admin seed
	AdminPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	return &Config{
		Port:          getEnv("PORT", "8000"),
		DBSource:      getEnv("DB_SOURCE", "qrplatform.db"),
		SessionSecret: getEnv("SESSION_SECRET", "qr-menu-secret-change-in-production"),
		RootDomain:    getEnv("ROOT_DOMAIN", ""),
		AppEnv:        getEnv("APP_ENV", "development"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8000"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

func (c *Config) Production() bool { return c.AppEnv == "production" }

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
