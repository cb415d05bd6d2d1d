package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/shoutwalk/parameter"
)

// maxLogSize triggers rotation of an existing log file at startup
const maxLogSize = 10 * 1024 * 1024

// setupLogging returns a file-backed logger when debug is set and a discarding one otherwise.
// The terminal is owned by the renderer, so nothing is ever written to stdout or stderr
func setupLogging(debug bool, dir string) (zerolog.Logger, *os.File, error) {
	if !debug {
		return zerolog.New(io.Discard), nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return zerolog.New(io.Discard), nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, parameter.LogFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		ext := filepath.Ext(parameter.LogFileName)
		base := parameter.LogFileName[:len(parameter.LogFileName)-len(ext)]
		rotated := filepath.Join(dir, fmt.Sprintf("%s_%s%s", base, time.Now().Format("20060102_150405"), ext))
		if err := os.Rename(path, rotated); err != nil {
			return zerolog.New(io.Discard), nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.New(io.Discard), nil, fmt.Errorf("open log: %w", err)
	}

	logger := zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	return logger, f, nil
}
