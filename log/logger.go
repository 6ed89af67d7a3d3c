// Package log provides named, leveled loggers for the renderer and CLI.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level controls logger verbosity.
type Level logging.Level

const (
	Debug Level = iota
	Info
	Warning
	Error
)

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var leveledBackend logging.LeveledBackend

// Logger is the subset of the logging backend the rest of the code uses.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New creates a named logger. Loggers with the same name share state.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects all logger output to the given writer.
func SetSink(sink io.Writer) {
	backend := logging.NewLogBackend(sink, "", 0)
	withFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(withFormatter)
	leveledBackend.SetLevel(logging.INFO, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel sets the verbosity for all loggers.
func SetLevel(level Level) {
	var backendLevel logging.Level

	switch level {
	case Debug:
		backendLevel = logging.DEBUG
	case Info:
		backendLevel = logging.INFO
	case Warning:
		backendLevel = logging.WARNING
	case Error:
		backendLevel = logging.ERROR
	}

	leveledBackend.SetLevel(backendLevel, "")
}

func init() {
	SetSink(os.Stdout)
	SetLevel(Info)
}
