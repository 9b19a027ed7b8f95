package logs

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"
)

const modulePrefix = "github.com/trezor/trezorlib-go/"

// Logger writes lines prefixed with the calling file, line and function.
// A nil *Logger or one with nil Writer discards everything.
type Logger struct {
	Writer io.Writer
	mutex  sync.Mutex
}

// New returns a Logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{Writer: w}
}

func findInternalPrefix() string {
	pc := make([]uintptr, 15)
	n := runtime.Callers(1, pc)
	frames := runtime.CallersFrames(pc[:n])
	frame, _ := frames.Next()
	return strings.TrimSuffix(frame.File, "internal/logs/logger.go")
}

var internalPrefix = findInternalPrefix()

// Write makes Logger an io.Writer, so it can be handed to code
// that logs through a plain writer.
func (l *Logger) Write(p []byte) (int, error) {
	l.logIn(string(p), 3)
	return len(p), nil
}

func (l *Logger) Log(s string) {
	l.logIn(s, 3)
}

func (l *Logger) Logf(format string, args ...interface{}) {
	l.logIn(fmt.Sprintf(format, args...), 3)
}

// Println lets Logger stand in for loggers with the log.Logger shape.
func (l *Logger) Println(v ...interface{}) {
	l.logIn(fmt.Sprintln(v...), 3)
}

// callers is how many frames up the stack the logged call site is.
func (l *Logger) logIn(s string, callers int) {
	if l == nil || l.Writer == nil {
		return
	}
	s = strings.TrimSuffix(s, "\n")
	pc := make([]uintptr, 15)
	n := runtime.Callers(callers, pc)
	frames := runtime.CallersFrames(pc[:n])
	frame, _ := frames.Next()
	file := strings.TrimPrefix(frame.File, internalPrefix)
	function := strings.TrimPrefix(frame.Function, modulePrefix)
	l.println(fmt.Sprintf("[%s %d %s] %s", file, frame.Line, function, s))
}

func (l *Logger) println(s string) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	_, err := l.Writer.Write([]byte(s + "\n"))
	if err != nil {
		// give up, just print on stdout
		fmt.Println(err)
	}
}
