// Package logging configures the process-wide phuslu logger.
package logging

import (
	"io"
	"os"

	"github.com/phuslu/log"
)

// Setup installs a console logger at the given level. Unknown levels fall
// back to info.
func Setup(level string) {
	SetupWriter(level, os.Stderr)
}

func SetupWriter(level string, out io.Writer) {
	log.DefaultLogger = log.Logger{
		Level:      ParseLevel(level),
		TimeFormat: "15:04:05",
		Writer: &log.ConsoleWriter{
			Writer:         out,
			ColorOutput:    log.IsTerminal(os.Stderr.Fd()) && out == os.Stderr,
			QuoteString:    true,
			EndWithMessage: true,
		},
	}
}

func ParseLevel(level string) log.Level {
	switch level {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic":
		return log.ParseLevel(level)
	default:
		return log.InfoLevel
	}
}
