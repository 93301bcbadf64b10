package observability

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ConfigureLogger sets the global zerolog level and output. Unknown levels
// fall back to info.
func ConfigureLogger(level string, out io.Writer) {
	l, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		l = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(l)
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}
