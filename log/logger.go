package log

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = []string{"trace", "debug", "info", "warn", "error", "fatal"}

func NewLevel(l string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(l, name) {
			return Level(i), nil
		}
	}
	return LevelTrace, errors.Errorf("invalid log level %q", l)
}

func (l Level) String() string {
	if l < LevelTrace || l > LevelFatal {
		panic("invalid level")
	}
	return levelNames[l]
}

func (l Level) logrus() logrus.Level {
	switch l {
	case LevelTrace:
		return logrus.TraceLevel
	case LevelDebug:
		return logrus.DebugLevel
	case LevelInfo:
		return logrus.InfoLevel
	case LevelWarn:
		return logrus.WarnLevel
	case LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.FatalLevel
	}
}

var currLevel = LevelInfo

var backend = logrus.New()

var rootLogger = &logrusLogger{
	backend: backend,
}

// Logger is a leveled logger taking structured fields as alternating
// key/value pairs.
type Logger interface {
	Trace(string, ...interface{})
	Debug(string, ...interface{})
	Info(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Fatal(string, ...interface{})
	Sub(...interface{}) Logger
}

func SetLevel(level Level) {
	currLevel = level
	backend.SetLevel(level.logrus())
}

func SetOutput(w io.Writer) {
	backend.SetOutput(w)
}

// SetJSON switches between logrus's JSON and text formatters.
func SetJSON(enabled bool) {
	if enabled {
		backend.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	backend.SetFormatter(&logrus.TextFormatter{})
}

func WithModule(name string) Logger {
	return rootLogger.Sub("module", name)
}

func init() {
	// set log level to trace by default in test
	if strings.HasSuffix(os.Args[0], ".test") {
		SetLevel(LevelTrace)
	}
}
