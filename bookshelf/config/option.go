package config

import (
	"time"

	"go.uber.org/zap/zapcore"
)

type Option func(cfg *Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(cfg *Config) {
		cfg.Log.LogLevel = level
	}
}

func WithLogSink(path string) Option {
	return func(cfg *Config) {
		cfg.Log.Sink = path
	}
}

func WithServer(server string) Option {
	return func(cfg *Config) {
		cfg.BooksAPI.Server = server
	}
}

func WithHTTPTimeout(timeout time.Duration) Option {
	return func(cfg *Config) {
		cfg.BooksAPI.Timeout = timeout
	}
}

func WithWidth(cols int) Option {
	return func(cfg *Config) {
		cfg.Screen.Width = cols
	}
}
