package logs

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// to prevent possible memory issues, hardcode max line length
const maxLineLength = 500

// MemoryWriter keeps logs in memory. The first lines are kept for good,
// the rest go into a fixed ring where the oldest line is overwritten.
// The session engine logs every frame it sends and receives; this keeps
// that detail available for a failure report without unbounded growth.
type MemoryWriter struct {
	mutex sync.Mutex

	head  [][]byte // first lines, never dropped
	ring  [][]byte // later lines; ring[next] is the oldest once full
	next  int
	full  bool
	start time.Time

	printTime bool
	out       io.Writer
}

// NewMemoryWriter keeps the first startSize lines forever and the last
// size lines in a ring. Every line is also copied to out, if not nil.
func NewMemoryWriter(size int, startSize int, printTime bool, out io.Writer) (*MemoryWriter, error) {
	if size < 1 {
		return nil, errors.New("size cannot be <1")
	}
	if startSize < 1 {
		return nil, errors.New("start size cannot be <1")
	}
	return &MemoryWriter{
		head:      make([][]byte, 0, startSize),
		ring:      make([][]byte, size),
		start:     time.Now(),
		printTime: printTime,
		out:       out,
	}, nil
}

func (m *MemoryWriter) stamp(p []byte) []byte {
	if !m.printTime {
		line := make([]byte, len(p))
		copy(line, p)
		return line
	}
	now := time.Now()
	return []byte(fmt.Sprintf("[%.6f : %s] %s", now.Sub(m.start).Seconds(), now.Format("15:04:05"), p))
}

// Write remembers one line in memory.
func (m *MemoryWriter) Write(p []byte) (int, error) {
	n := len(p)
	if len(p) > maxLineLength {
		p = p[:maxLineLength]
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	line := m.stamp(p)
	if len(m.head) < cap(m.head) {
		m.head = append(m.head, line)
	} else {
		m.ring[m.next] = line
		m.next = (m.next + 1) % len(m.ring)
		if m.next == 0 {
			m.full = true
		}
	}

	if m.out != nil {
		if _, err := m.out.Write(line); err != nil {
			// give up, just print on stdout
			fmt.Println(err)
		}
	}
	return n, nil
}

// recent returns the ring lines, oldest first. Caller holds the mutex.
func (m *MemoryWriter) recent() [][]byte {
	if !m.full {
		return m.ring[:m.next]
	}
	res := make([][]byte, 0, len(m.ring))
	res = append(res, m.ring[m.next:]...)
	return append(res, m.ring[:m.next]...)
}

// writeTo exports lines to a writer, newest first, with a header on top.
func (m *MemoryWriter) writeTo(header string, w io.Writer) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	recent := m.recent()
	for i := len(recent) - 1; i >= 0; i-- {
		if _, err := w.Write(recent[i]); err != nil {
			return err
		}
	}
	// gap between the end and the start of the log
	if _, err := io.WriteString(w, "...\n"); err != nil {
		return err
	}
	for i := len(m.head) - 1; i >= 0; i-- {
		if _, err := w.Write(m.head[i]); err != nil {
			return err
		}
	}
	return nil
}

// String exports as string
func (m *MemoryWriter) String(header string) (string, error) {
	var b bytes.Buffer
	if err := m.writeTo(header, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Gzip exports as GZip bytes
func (m *MemoryWriter) Gzip(header string) ([]byte, error) {
	var buf bytes.Buffer
	gw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, err
	}
	gw.Name = "trezorctl-log.txt"

	if err := m.writeTo(header, gw); err != nil {
		return nil, err
	}
	if err := gw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Tail returns the last n remembered lines, oldest first. Lines that
// are still among the first kept ones count too.
func (m *MemoryWriter) Tail(n int) []string {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	all := append(append([][]byte{}, m.head...), m.recent()...)
	if n > len(all) {
		n = len(all)
	}
	res := make([]string, 0, n)
	for _, line := range all[len(all)-n:] {
		res = append(res, strings.TrimSuffix(string(line), "\n"))
	}
	return res
}
