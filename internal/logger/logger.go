package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/humanbelnik/flowquest/core/internal/config"
	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup installs the process wide slog logger and returns it.
func Setup(cfg config.Log) *slog.Logger {
	var w io.Writer = os.Stdout
	if cfg.File != "" {
		w = io.MultiWriter(os.Stdout, FileWriter(cfg.File))
	}
	l := New(w, cfg)
	slog.SetDefault(l)
	return l
}

func New(w io.Writer, cfg config.Log) *slog.Logger {
	level := ParseLevel(cfg.Level)

	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level, AddSource: true})
	default:
		h = tint.NewHandler(w, &tint.Options{
			Level:      level,
			AddSource:  true,
			TimeFormat: time.TimeOnly,
		})
	}
	return slog.New(h)
}

func ParseLevel(raw string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// FileWriter rotates at 100MB and keeps five compressed backups for a month.
func FileWriter(path string) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    100,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	}
}
