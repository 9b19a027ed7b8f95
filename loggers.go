package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/trezor/trezorlib-go/internal/logs"
)

type loggers struct {
	// where we write short messages to stderr, or to the rotated file
	stderr io.Writer
	// what we show on the gateway status page
	short *logs.MemoryWriter
	// what the library logs into; forwarded to stderr when verbose
	long *logs.MemoryWriter
}

func initLoggers(logfile string, verbose bool, stderr io.Writer) (*loggers, error) {
	if logfile != "" {
		stderr = &lumberjack.Logger{
			Filename:   logfile,
			MaxSize:    20, // megabytes
			MaxBackups: 3,
		}
	} else if stderr == nil {
		stderr = os.Stderr
	}

	short, err := logs.NewMemoryWriter(2000, 200, false, nil)
	if err != nil {
		return nil, fmt.Errorf("writer: %w", err)
	}

	verboseWriter := stderr
	if !verbose {
		verboseWriter = nil
	}

	long, err := logs.NewMemoryWriter(90000, 200, true, verboseWriter)
	if err != nil {
		return nil, fmt.Errorf("writer: %w", err)
	}
	return &loggers{stderr: stderr, short: short, long: long}, nil
}

func (l *loggers) close() {
	if c, ok := l.stderr.(io.Closer); ok && l.stderr != os.Stderr {
		c.Close()
	}
}
