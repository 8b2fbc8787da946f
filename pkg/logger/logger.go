package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log - глобальный логгер движка
var Log *logrus.Logger

func init() {
	// Пакеты могут логировать ещё до Init (например, в тестах без TestMain)
	Log = logrus.New()
	Log.SetOutput(io.Discard)
}

// Init настраивает логгер по переменным окружения LOG_LEVEL и LOG_FORMAT
func Init() {
	InitWithOutput(os.Stdout, os.Getenv("LOG_LEVEL"))

	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		Log.SetFormatter(&logrus.JSONFormatter{})
	}
}

// InitWithOutput - то же самое, но с явным writer'ом и уровнем (для CLI и тестов).
// Пустой или неизвестный уровень превращается в info.
func InitWithOutput(w io.Writer, level string) {
	Log = logrus.New()
	Log.SetOutput(w)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		ForceColors:   w == os.Stdout,
	})
}
