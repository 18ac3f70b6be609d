package logger

import (
	"log/slog"
	"os"
	"sync"
)

var (
	log  *slog.Logger
	once sync.Once
)

func get() *slog.Logger {
	once.Do(func() {
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	})
	return log
}

func Info(msg string, kv ...any) {
	get().Info(msg, kv...)
}

func Warn(msg string, kv ...any) {
	get().Warn(msg, kv...)
}

func Debug(msg string, kv ...any) {
	get().Debug(msg, kv...)
}

// Error accepts either a bare error as the sole argument or the usual
// key/value pairs, so call sites can do Error("Repo:Create:Error:", err).
func Error(msg string, kv ...any) {
	if len(kv) == 1 {
		if err, ok := kv[0].(error); ok {
			get().Error(msg, "err", err)
			return
		}
	}
	get().Error(msg, kv...)
}
