package main

import (
	"errors"
	"io/fs"
	stdLog "log"

	"github.com/Astemirdum/bookshelf/bookshelf/app"
	"github.com/Astemirdum/bookshelf/bookshelf/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		stdLog.Fatal("load envs from .env ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.InfoLevel),
		config.WithWidth(80),
	)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal("run ", err)
	}
}
