package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	mu      sync.Mutex
	loggers = make(map[string]*logHandle)
)

type logHandle struct {
	*logrus.Logger

	name     string
	colorful bool
}

func (l *logHandle) Format(e *logrus.Entry) ([]byte, error) {
	lvl := strings.ToUpper(e.Level.String())
	if l.colorful {
		var color int
		switch e.Level {
		case logrus.DebugLevel, logrus.TraceLevel:
			color = 34 // blue
		case logrus.WarnLevel:
			color = 33 // yellow
		case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
			color = 31 // red
		default:
			color = 32 // green
		}
		lvl = fmt.Sprintf("\033[1;%dm%s\033[0m", color, lvl)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s[%d] <%s>: %s",
		e.Time.Format("2006/01/02 15:04:05.000000"), l.name, os.Getpid(), lvl, e.Message)
	for k, v := range e.Data {
		fmt.Fprintf(&b, " %s=%v", k, v)
	}
	if len(e.Message) == 0 || e.Message[len(e.Message)-1] != '\n' {
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

// SupportANSIColor reports whether fd is a terminal that understands escape codes.
func SupportANSIColor(fd uintptr) bool {
	return isatty.IsTerminal(fd) && os.Getenv("TERM") != "dumb"
}

func newLogger(name string) *logHandle {
	l := &logHandle{Logger: logrus.New(), name: name, colorful: SupportANSIColor(os.Stderr.Fd())}
	l.Formatter = l
	return l
}

// GetLogger returns the logger registered under name, creating it on first use.
func GetLogger(name string) *logHandle {
	mu.Lock()
	defer mu.Unlock()

	if logger, ok := loggers[name]; ok {
		return logger
	}
	logger := newLogger(name)
	loggers[name] = logger
	return logger
}

func SetLogLevel(lvl logrus.Level) {
	mu.Lock()
	defer mu.Unlock()
	for _, logger := range loggers {
		logger.SetLevel(lvl)
	}
}

func DisableLogColor() {
	mu.Lock()
	defer mu.Unlock()
	for _, logger := range loggers {
		logger.colorful = false
	}
}

func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	for _, logger := range loggers {
		logger.SetOutput(w)
	}
}
