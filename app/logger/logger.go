// Package logger builds the application's zerolog logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing JSON to w, or a console writer in development.
func New(level string, development bool, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stdout
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if development {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Badger adapts a zerolog logger to badger's Logger interface.
type Badger struct {
	log zerolog.Logger
}

// NewBadger tags every badger message with component=badger.
func NewBadger(log zerolog.Logger) *Badger {
	return &Badger{log: log.With().Str("component", "badger").Logger()}
}

func (b *Badger) Errorf(format string, args ...interface{}) {
	b.log.Error().Msg(trim(format, args...))
}

func (b *Badger) Warningf(format string, args ...interface{}) {
	b.log.Warn().Msg(trim(format, args...))
}

func (b *Badger) Infof(format string, args ...interface{}) {
	b.log.Info().Msg(trim(format, args...))
}

func (b *Badger) Debugf(format string, args ...interface{}) {
	b.log.Debug().Msg(trim(format, args...))
}

// badger terminates most messages with a newline.
func trim(format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	for len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	return msg
}
