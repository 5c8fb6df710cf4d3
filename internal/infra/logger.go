package infra

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the process logger. Production emits structured JSON for
// log shippers; everything else gets the human-readable console writer.
func NewLogger(env string, out io.Writer) zerolog.Logger {
	if env == "production" {
		return zerolog.New(out).With().Timestamp().Logger()
	}
	cw := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	return zerolog.New(cw).With().Timestamp().Logger()
}
