package utils

import (
	"fmt"
	"io"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
)

// NewLogger builds the logger described by the log section of the config
func NewLogger(config LogConfig, w io.Writer) (log.Logger, error) {
	level, err := zerolog.ParseLevel(config.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	opts := []log.Option{
		log.LevelOption(level),
		log.ColorOption(false),
	}
	if config.Format == "json" {
		opts = append(opts, log.OutputJSONOption())
	}

	return log.NewLogger(w, opts...), nil
}
