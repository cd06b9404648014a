// Package log holds the process-wide leveled loggers.
package log

import (
	"io"
	stdlog "log"
	"os"
)

var (
	Info  = stdlog.New(os.Stdout, "INFO  ", stdlog.LstdFlags|stdlog.Lmsgprefix)
	Error = stdlog.New(os.Stderr, "ERROR ", stdlog.LstdFlags|stdlog.Lmsgprefix)
)

// SetOutput redirects both loggers, e.g. to silence them in tests.
func SetOutput(w io.Writer) {
	Info.SetOutput(w)
	Error.SetOutput(w)
}
