package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logDir      = "logs"
	logFileName = "marbles.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging writes to logs/marbles.log in debug mode and discards otherwise
// The terminal owns stdout and stderr, so neither is ever a log sink
func setupLogging(debug bool, level string) (zerolog.Logger, *os.File) {
	if !debug {
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("marbles-%s.log", time.Now().Format("20060102-150405")))
		os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nil
	}
	log.SetOutput(f)

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.DebugLevel
	}
	logger := zerolog.New(f).Level(lvl).With().Timestamp().Logger()
	return logger, f
}
