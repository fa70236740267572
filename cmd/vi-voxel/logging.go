package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/vi-voxel/config"
)

const (
	logFileName = "vi-voxel.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging builds a zap logger writing to a file under cfg.Dir
// The terminal owns stdout, so logs never go there; with no level configured and
// debug off, logging is disabled and the returned file is nil
func setupLogging(cfg config.LoggingConfig, debug bool) (*zap.Logger, *os.File, error) {
	if !debug && cfg.Level == "" {
		return zap.NewNop(), nil, nil
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	} else if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("log dir %s: %w", cfg.Dir, err)
	}
	path := filepath.Join(cfg.Dir, logFileName)
	if err := rotateLog(path); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log %s: %w", path, err)
	}

	var enc zapcore.Encoder
	if cfg.Format == "json" {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		ec.ConsoleSeparator = "  "
		enc = zapcore.NewConsoleEncoder(ec)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(f), level)
	return zap.New(core), f, nil
}

// rotateLog moves a log past maxLogSize aside under a timestamped name
func rotateLog(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return nil
	}
	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s-%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log %s: %w", path, err)
	}
	return nil
}
