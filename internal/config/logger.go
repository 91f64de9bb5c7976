package config

import (
	"context"
	"os"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

func InitLogger(s LogSettings) {
	Logger.SetOutput(os.Stdout)

	if strings.EqualFold(s.Format, "text") {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(s.Level)
	if err != nil {
		Logger.WithError(err).Warnf("Invalid log level %q, using info", s.Level)
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)
}

// WithContext returns a logger tagged with the chi request id, when present.
func WithContext(ctx context.Context) logrus.FieldLogger {
	entry := logrus.NewEntry(Logger)
	if ctx == nil {
		return entry
	}
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		return entry.WithField("request_id", reqID)
	}
	return entry
}
