package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
	"github.com/qdm12/log"
)

type Logger struct {
	Level *log.Level
	// Caller can be "hidden" or "short".
	Caller string
}

func (l *Logger) setDefaults() {
	l.Level = gosettings.DefaultPointer(l.Level, log.LevelInfo)
	l.Caller = gosettings.DefaultComparable(l.Caller, "hidden")
}

func (l Logger) Validate() (err error) {
	err = validate.IsOneOf(l.Caller, "hidden", "short")
	if err != nil {
		return fmt.Errorf("caller: %w", err)
	}
	return nil
}

func (l Logger) String() string {
	return l.toLinesNode().String()
}

func (l Logger) toLinesNode() *gotree.Node {
	node := gotree.New("Logger")
	node.Appendf("Level: %s", *l.Level)
	node.Appendf("Caller: %s", l.Caller)
	return node
}

// ToOptions returns the options to patch a logger with.
// It assumes the settings have been validated.
func (l Logger) ToOptions() (options []log.Option) {
	return []log.Option{
		log.SetLevel(*l.Level),
		log.SetCallerFile(l.Caller == "short"),
		log.SetCallerLine(l.Caller == "short"),
	}
}

func (l *Logger) read(r *reader.Reader) (err error) {
	l.Caller = r.String("LOG_CALLER")

	levelString := r.Get("LOG_LEVEL")
	if levelString != nil {
		level, err := parseLogLevel(*levelString)
		if err != nil {
			return fmt.Errorf("environment variable LOG_LEVEL: %w", err)
		}
		l.Level = &level
	}

	return nil
}

var ErrLogLevelUnknown = errors.New("log level is unknown")

func parseLogLevel(s string) (level log.Level, err error) {
	switch strings.ToLower(s) {
	case "debug", "trace":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warning", "warn":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	default:
		return level, fmt.Errorf(
			"%w: %q is not valid and can be one of debug, info, warning or error",
			ErrLogLevelUnknown, s)
	}
}
