package config

import (
	"log"
	"os"
	"sync"
	"time"
)

type AppConfig struct {
	Name      string
	Env       string
	Port      string
	BaseURL   string
	LogFormat string
	LogLevel  string

	RateLimitMax    int
	RateLimitWindow time.Duration
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
			log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
		}
		port := os.Getenv("APP_PORT")
		if port == "" {
			port = ":8080"
		}
		appConfig = &AppConfig{
			Name:      envOr("APP_NAME", "talent-fit"),
			Env:       env,
			Port:      port,
			BaseURL:   os.Getenv("APP_URL"),
			LogFormat: envOr("LOG_FORMAT", "console"),
			LogLevel:  envOr("LOG_LEVEL", "info"),

			RateLimitMax:    envInt("RATE_LIMIT_MAX", 50),
			RateLimitWindow: envDuration("RATE_LIMIT_WINDOW", time.Minute),
		}
	})
	return appConfig
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}
