package logger

import (
	"io"
	"log/slog"
	"os"
)

var Logger *slog.Logger

// Init configura o logger JSON padrão do processo.
func Init(environment string) *slog.Logger {
	return InitWriter(environment, os.Stdout)
}

func InitWriter(environment string, w io.Writer) *slog.Logger {
	var handler slog.Handler

	if environment == "production" {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       slog.LevelDebug,
			ReplaceAttr: replaceTimeAttr,
			AddSource:   true,
		})
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	slog.Info("logger inicializado", "environment", environment)
	return Logger
}

func replaceTimeAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.String("time", a.Value.Time().Local().Format("2006-01-02 15:04:05"))
	}
	return a
}
