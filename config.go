package main

import (
	"fmt"
	"os"
	"time"
)

// Config is read from the environment. A .env file in the working
// directory is loaded first by godotenv.
type Config struct {
	Port            string
	ContentPath     string
	StaticDir       string
	ImagesDir       string
	ShutdownTimeout time.Duration
}

func loadConfig() (Config, error) {
	cfg := Config{
		Port:            os.Getenv("PORT"),
		ContentPath:     os.Getenv("CONTENT_PATH"), // empty uses the embedded portfolio
		StaticDir:       os.Getenv("STATIC_DIR"),
		ImagesDir:       os.Getenv("IMAGES_DIR"),
		ShutdownTimeout: 5 * time.Second,
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "./static"
	}
	if cfg.ImagesDir == "" {
		cfg.ImagesDir = "./images"
	}

	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownTimeout = d
	}
	return cfg, nil
}
