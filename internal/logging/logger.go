// Package logging configures the global zerolog logger.
package logging

import (
	"io"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup points the global logger at a human readable console writer on w,
// or on stderr when w is nil. Debug messages are only enabled when verbose.
func Setup(w io.Writer, verbose bool) {
	noColor := true
	if w == nil {
		w = colorable.NewColorableStderr()
		noColor = false
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: time.RFC3339,
	}).Level(level).With().Timestamp().Logger()
}
