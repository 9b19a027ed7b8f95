package logs

import (
	"bytes"
	"compress/gzip"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerPrefixesCaller(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.Logf("hello %d", 5)

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "] hello 5\n"), out)
	assert.Contains(t, out, "logs_test.go")
	assert.Contains(t, out, "TestLoggerPrefixesCaller")
}

func TestNilLoggerDiscards(t *testing.T) {
	var l *Logger
	l.Log("nothing")
	(&Logger{}).Logf("nothing %s", "either")
}

func TestMemoryWriterRotates(t *testing.T) {
	m, err := NewMemoryWriter(2, 1, false, nil)
	require.NoError(t, err)

	for _, s := range []string{"a\n", "b\n", "c\n", "d\n"} {
		_, err := m.Write([]byte(s))
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"a", "c", "d"}, m.Tail(5))
	assert.Equal(t, []string{"c", "d"}, m.Tail(2))

	s, err := m.String("head\n")
	require.NoError(t, err)
	assert.Equal(t, "head\nd\nc\n...\na\n", s)
}

func TestMemoryWriterPartialRing(t *testing.T) {
	m, err := NewMemoryWriter(3, 1, false, nil)
	require.NoError(t, err)
	for _, s := range []string{"a\n", "b\n", "c\n"} {
		_, err := m.Write([]byte(s))
		require.NoError(t, err)
	}
	s, err := m.String("")
	require.NoError(t, err)
	assert.Equal(t, "c\nb\n...\na\n", s)
}

func TestMemoryWriterCutsLongLines(t *testing.T) {
	m, err := NewMemoryWriter(1, 1, false, nil)
	require.NoError(t, err)
	long := strings.Repeat("x", 2*maxLineLength)
	n, err := m.Write([]byte(long))
	require.NoError(t, err)
	assert.Equal(t, len(long), n)
	assert.Len(t, m.Tail(1)[0], maxLineLength)
}

func TestMemoryWriterGzip(t *testing.T) {
	var out bytes.Buffer
	m, err := NewMemoryWriter(10, 10, false, &out)
	require.NoError(t, err)
	_, err = m.Write([]byte("line\n"))
	require.NoError(t, err)
	assert.Equal(t, "line\n", out.String())

	gz, err := m.Gzip("")
	require.NoError(t, err)
	r, err := gzip.NewReader(bytes.NewReader(gz))
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "...\nline\n", string(data))
}

func TestMemoryWriterSizes(t *testing.T) {
	_, err := NewMemoryWriter(0, 1, false, nil)
	assert.Error(t, err)
	_, err = NewMemoryWriter(1, 0, false, nil)
	assert.Error(t, err)
}
