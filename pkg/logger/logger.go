package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu  sync.RWMutex
	log = newLogger(os.Stderr, slog.LevelInfo)
)

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	}))
}

// Setup configures the global logger. An empty filePath keeps console-only
// output; otherwise logs are also written to a rotating file.
func Setup(level, filePath string) {
	lvl := parseLevel(level)

	var w io.Writer = os.Stderr
	if filePath != "" {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		})
	}

	mu.Lock()
	log = newLogger(w, lvl)
	mu.Unlock()
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func attrs(component string, fields map[string]interface{}) []any {
	out := make([]any, 0, 2+2*len(fields))
	out = append(out, "component", component)
	for k, v := range fields {
		out = append(out, k, v)
	}
	return out
}

func DebugC(component, msg string) {
	current().Debug(msg, "component", component)
}

func DebugCF(component, msg string, fields map[string]interface{}) {
	current().Debug(msg, attrs(component, fields)...)
}

func InfoC(component, msg string) {
	current().Info(msg, "component", component)
}

func InfoCF(component, msg string, fields map[string]interface{}) {
	current().Info(msg, attrs(component, fields)...)
}

func WarnC(component, msg string) {
	current().Warn(msg, "component", component)
}

func WarnCF(component, msg string, fields map[string]interface{}) {
	current().Warn(msg, attrs(component, fields)...)
}

func ErrorC(component, msg string) {
	current().Error(msg, "component", component)
}

func ErrorCF(component, msg string, fields map[string]interface{}) {
	current().Error(msg, attrs(component, fields)...)
}
