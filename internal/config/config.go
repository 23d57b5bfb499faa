package config

import (
	"github.com/maxviazov/pagination/internal/logger"
)

type Config struct {
	App        AppConfig           `mapstructure:"app"`
	Logger     logger.LoggerConfig `mapstructure:"logger" validate:"-"` // validated by logger.New after defaults
	Pagination PaginationConfig    `mapstructure:"pagination"`
}

type AppConfig struct {
	Name    string `mapstructure:"name" validate:"required"`
	Version string `mapstructure:"version"`
	Port    int    `mapstructure:"port" validate:"min=1,max=65535"`
}

// PaginationConfig controls how list endpoints treat page/limit input.
type PaginationConfig struct {
	// Strict rejects out-of-range values with 400 instead of clamping them.
	Strict bool `mapstructure:"strict"`
	// BasePath overrides the path used in navigation links, e.g. behind a reverse proxy.
	BasePath string `mapstructure:"base_path" validate:"omitempty,startswith=/"`
}
