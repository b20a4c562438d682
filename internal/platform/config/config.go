package config

import (
	"log/slog"
	"os"
)

// Server captures process-level configuration.
type Server struct {
	Addr     string
	LogLevel slog.Level
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("CUSTOS_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	level := slog.LevelInfo
	if os.Getenv("CUSTOS_DEBUG") == "true" {
		level = slog.LevelDebug
	}

	return Server{
		Addr:     addr,
		LogLevel: level,
	}
}
