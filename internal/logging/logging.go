// Package logging configures the boundary layer's structured logger.
// Actor and job internals log through log/slog; this logrus instance
// covers the externally facing HTTP surface, where JSON lines with a
// stable service field are what log pipelines expect.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Fields aliases logrus.Fields so callers don't import logrus directly.
type Fields = logrus.Fields

// New returns a JSON-formatted logger at the level named by the
// LOG_LEVEL environment variable (info when unset or unparseable).
func New() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(level())
	return log
}

// NewWithService returns a New logger that stamps every entry with a
// service field.
func NewWithService(service string) *logrus.Logger {
	log := New()
	log.AddHook(serviceHook{service: service})
	return log
}

func level() logrus.Level {
	raw := os.Getenv("LOG_LEVEL")
	if raw == "" {
		return logrus.InfoLevel
	}
	lvl, err := logrus.ParseLevel(raw)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

type serviceHook struct {
	service string
}

func (h serviceHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h serviceHook) Fire(e *logrus.Entry) error {
	e.Data["service"] = h.service
	return nil
}
