package logger

import (
	"io"
	"log"
	"os"

	"github.com/fatih/color"
)

var (
	Debug   *log.Logger
	Info    *log.Logger
	Warning *log.Logger
	Error   *log.Logger
	HTTP    *log.Logger
)

const flags = log.Ldate | log.Ltime | log.Lmsgprefix

func init() {
	// Loggers are usable before Setup runs, e.g. from package tests.
	SetOutput(io.Discard, io.Discard)
}

// Setup routes INFO/HTTP/DEBUG to stdout and WARNING/ERROR to stderr.
func Setup() {
	SetOutput(os.Stdout, os.Stderr)
}

// SetOutput points every logger at the given writers. Colours are disabled
// automatically by fatih/color when the process is not attached to a terminal.
func SetOutput(out, errOut io.Writer) {
	Debug = log.New(out, color.New(color.FgHiBlack).Sprint("DEBUG: "), flags)
	Info = log.New(out, color.New(color.FgGreen).Sprint("INFO: "), flags)
	HTTP = log.New(out, color.New(color.FgCyan).Sprint("HTTP: "), flags)
	Warning = log.New(errOut, color.New(color.FgYellow).Sprint("WARNING: "), flags)
	Error = log.New(errOut, color.New(color.FgRed, color.Bold).Sprint("ERROR: "), flags|log.Lshortfile)
}
