package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// fieldName is the structured field carrying the store name on every entry.
const fieldName = "ttlstore"

// Logger is the logging surface used by the store.
type Logger interface {
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

// make sure stdLogger implements the Logger interface.
var _ Logger = (*stdLogger)(nil)

type stdLogger struct {
	entry *logrus.Entry
}

func (l *stdLogger) Info(args ...interface{})                  { l.entry.Info(args...) }
func (l *stdLogger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *stdLogger) Debug(args ...interface{})                 { l.entry.Debug(args...) }
func (l *stdLogger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *stdLogger) Warn(args ...interface{})                  { l.entry.Warn(args...) }
func (l *stdLogger) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *stdLogger) Error(args ...interface{})                 { l.entry.Error(args...) }
func (l *stdLogger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

// make sure suppressedLogger implements the Logger interface.
var _ Logger = (*suppressedLogger)(nil)

type suppressedLogger struct{}

func (l *suppressedLogger) Info(args ...interface{})                  {}
func (l *suppressedLogger) Infof(format string, args ...interface{})  {}
func (l *suppressedLogger) Debug(args ...interface{})                 {}
func (l *suppressedLogger) Debugf(format string, args ...interface{}) {}
func (l *suppressedLogger) Warn(args ...interface{})                  {}
func (l *suppressedLogger) Warnf(format string, args ...interface{})  {}
func (l *suppressedLogger) Error(args ...interface{})                 {}
func (l *suppressedLogger) Errorf(format string, args ...interface{}) {}

// New creates a logger writing to stdout, tagged with the given store name.
// A suppressed logger discards everything.
func New(name string, suppressed, debugLogs bool) Logger {
	return NewWithOutput(os.Stdout, name, suppressed, debugLogs)
}

// NewWithOutput is New with an explicit destination.
func NewWithOutput(w io.Writer, name string, suppressed, debugLogs bool) Logger {
	if suppressed {
		return &suppressedLogger{}
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)

	if debugLogs {
		l.SetLevel(logrus.DebugLevel)
	}

	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   false,
		ForceColors:     true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		PadLevelText:    true,
	})

	return &stdLogger{
		entry: l.WithField(fieldName, name),
	}
}
