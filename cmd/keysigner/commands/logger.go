package commands

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// newLogger builds the CLI logger.
//
// Level: --verbose gives debug, --quiet gives warn, otherwise the configured
// log_level. Output is a console writer when w is a terminal and NO_COLOR is
// unset, JSON otherwise.
func newLogger(configured string, verbose, quiet bool, w io.Writer) (zerolog.Logger, error) {
	level, err := selectLevel(configured, verbose, quiet)
	if err != nil {
		return zerolog.Nop(), err
	}
	return zerolog.New(selectOutput(w)).Level(level).With().Timestamp().Logger(), nil
}

func selectLevel(configured string, verbose, quiet bool) (zerolog.Level, error) {
	switch {
	case verbose:
		return zerolog.DebugLevel, nil
	case quiet:
		return zerolog.WarnLevel, nil
	case configured == "":
		return zerolog.InfoLevel, nil
	default:
		return zerolog.ParseLevel(configured)
	}
}

func selectOutput(w io.Writer) io.Writer {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return w
}
