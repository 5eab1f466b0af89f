package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/freehand/whiteboard/internal/engine"
)

type Config struct {
	Port      int    `envconfig:"PORT" default:"8080"`
	StaticDir string `envconfig:"STATIC_DIR" default:"./web"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	DevReload bool   `envconfig:"DEV_RELOAD" default:"false"`
	Advertise bool   `envconfig:"MDNS_ADVERTISE" default:"false"`

	BoardColor        string  `envconfig:"BOARD_COLOR" default:"#ac0000"`
	BoardWidth        float64 `envconfig:"BOARD_WIDTH" default:"2"`
	BoardBackground   string  `envconfig:"BOARD_BACKGROUND" default:"#fff"`
	BoardWheelDivisor float64 `envconfig:"BOARD_WHEEL_DIVISOR" default:"500"`
	BoardMinScale     float64 `envconfig:"BOARD_MIN_SCALE" default:"0.01"`
	BoardMaxScale     float64 `envconfig:"BOARD_MAX_SCALE" default:"100"`
}

// Board is the part of the configuration shipped to the browser.
type Board struct {
	Color        string  `json:"color"`
	Width        float64 `json:"width"`
	Background   string  `json:"background"`
	WheelDivisor float64 `json:"wheelDivisor"`
	MinScale     float64 `json:"minScale"`
	MaxScale     float64 `json:"maxScale"`
	LogLevel     string  `json:"logLevel"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.BoardMinScale <= 0 || cfg.BoardMaxScale < cfg.BoardMinScale {
		return nil, fmt.Errorf("invalid scale bounds: min=%v max=%v", cfg.BoardMinScale, cfg.BoardMaxScale)
	}
	if cfg.BoardWheelDivisor <= 0 {
		return nil, fmt.Errorf("invalid wheel divisor: %v", cfg.BoardWheelDivisor)
	}
	return &cfg, nil
}

// Board returns the browser-facing board settings.
func (c *Config) Board() Board {
	return Board{
		Color:        c.BoardColor,
		Width:        c.BoardWidth,
		Background:   c.BoardBackground,
		WheelDivisor: c.BoardWheelDivisor,
		MinScale:     c.BoardMinScale,
		MaxScale:     c.BoardMaxScale,
		LogLevel:     c.LogLevel,
	}
}

// EngineOptions converts board settings to engine options.
func (b Board) EngineOptions(logger *slog.Logger) engine.Options {
	return engine.Options{
		Color:        b.Color,
		Width:        b.Width,
		Background:   b.Background,
		WheelDivisor: b.WheelDivisor,
		MinScale:     b.MinScale,
		MaxScale:     b.MaxScale,
		Logger:       logger,
	}
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	return ParseLevel(c.LogLevel)
}

// SlogLevel is the browser logger's level.
func (b Board) SlogLevel() slog.Level {
	return ParseLevel(b.LogLevel)
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
