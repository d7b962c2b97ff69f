package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	Width   int    `env:"MAZE_WIDTH" envDefault:"9"`   // Default maze width in cells
	Height  int    `env:"MAZE_HEIGHT" envDefault:"11"` // Default maze height in cells
	Seed    uint64 `env:"MAZE_SEED" envDefault:"0"`    // Default seed, 0 draws a fresh one
	LogFile string `env:"MAZE_LOG_FILE"`               // File for diagnostic logs, empty discards them
	Lang    string `env:"MAZE_LANG" envDefault:"en"`   // Language tag for game messages
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[APP] [INFO] .env file could not be loaded: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
	return cfg
}

// Load reads the configuration from the current environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
