package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration, populated from the
// environment.
type Config struct {
	Port           string        `envconfig:"PORT" default:"3000"`
	DatabaseURL    string        `envconfig:"DATABASE_URL" required:"true"`
	RedisURL       string        `envconfig:"REDIS_URL" required:"true"`
	PhotosURL      string        `envconfig:"PHOTOS_URL" default:"https://jsonplaceholder.typicode.com/photos"`
	PhotosCacheTTL time.Duration `envconfig:"PHOTOS_CACHE_TTL" default:"5m"`
	CORSOrigin     string        `envconfig:"CORS_ORIGIN" default:"http://localhost:8080"`
}

// Load reads a .env file (outside production) and then the process
// environment.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, continuing..")
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
