package config

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/Astemirdum/bookshelf/pkg/logger"
	"github.com/Astemirdum/bookshelf/pkg/validate"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type BooksAPI struct {
	// Server is the base address, book and resource paths are resolved against it.
	Server string `yaml:"server" envconfig:"BOOKSHELF_SERVER" validate:"required,url"`
	// Timeout of zero waits forever.
	Timeout time.Duration `yaml:"timeout" envconfig:"BOOKSHELF_HTTP_TIMEOUT" validate:"gte=0"`
}

type Screen struct {
	Width   int  `yaml:"width" envconfig:"BOOKSHELF_WIDTH" validate:"gte=0"`
	NoClear bool `yaml:"noClear" envconfig:"BOOKSHELF_NO_CLEAR"`
}

type Config struct {
	BooksAPI BooksAPI   `yaml:"booksApi"`
	Screen   Screen     `yaml:"screen"`
	Log      logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		config, err := Load(ops...)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
	})

	return cfg
}

// Load applies ops as defaults, then the environment, then validates.
func Load(ops ...Option) (Config, error) {
	var config Config
	for _, op := range ops {
		op(&config)
	}
	if err := envconfig.Process("", &config); err != nil {
		return Config{}, errors.Wrap(err, "envconfig")
	}
	config.BooksAPI.Server = strings.TrimRight(config.BooksAPI.Server, "/")
	if err := validate.NewCustomValidator().Validate(config); err != nil {
		return Config{}, errors.Wrap(err, "validate")
	}
	return config, nil
}
