package main

import (
	"errors"
	"os"

	"github.com/spf13/pflag"
)

const (
	envLogLevel     = "HILBERT_LOG_LEVEL"
	defaultLogLevel = "INFO"
	defaultWidth    = 32

	formatText = "text"
	formatJSON = "json"
	formatCBOR = "cbor"
)

var (
	ErrBadWidth  = errors.New("width must be one of 8, 16, 32 or 64")
	ErrBadFormat = errors.New("format must be one of text, json or cbor")
	ErrBadIndex  = errors.New("index must be a base 10 integer below 2^128")
)

type Config struct {
	LogLevel string

	// Width is the coordinate width in bits for encode and decode. The index
	// has twice as many bits.
	Width uint
	// Format selects how encode and decode print their result.
	Format string
}

// NewConfigFromEnv returns the defaults, taking the log level from
// HILBERT_LOG_LEVEL when it is set.
func NewConfigFromEnv() Config {
	level := os.Getenv(envLogLevel)
	if level == "" {
		level = defaultLogLevel
	}
	return Config{
		LogLevel: level,
		Width:    defaultWidth,
		Format:   formatText,
	}
}

func (c Config) Validate() error {
	switch c.Width {
	case 8, 16, 32, 64:
	default:
		return ErrBadWidth
	}
	switch c.Format {
	case formatText, formatJSON, formatCBOR:
	default:
		return ErrBadFormat
	}
	return nil
}

func addWidthFlag(fs *pflag.FlagSet, cfg *Config) {
	fs.UintVarP(&cfg.Width, "width", "w", cfg.Width, "coordinate width in bits (8, 16, 32 or 64)")
}

func addGlobalFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (DEBUG, INFO, ...), defaults to $"+envLogLevel)
	fs.StringVarP(&cfg.Format, "format", "f", cfg.Format, "encode and decode output format (text, json or cbor)")
}
