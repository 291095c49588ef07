package ingestors

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectLines(t *testing.T, r io.Reader) ([]string, error) {
	t.Helper()

	var lines []string
	for line, err := range NewLogReader().Lines(r) {
		if err != nil {
			return lines, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func TestLogReader_Lines_Plain(t *testing.T) {
	t.Parallel()

	lines, err := collectLines(t, strings.NewReader("first line\nsecond  line \r\nthird"))
	require.NoError(t, err)
	assert.Equal(t, []string{"first line", "second  line ", "third"}, lines)
}

func TestLogReader_Lines_TrailingNewline(t *testing.T) {
	t.Parallel()

	lines, err := collectLines(t, strings.NewReader("a\nb\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)
}

func TestLogReader_Lines_Gzip(t *testing.T) {
	t.Parallel()

	content := "line one\nline two\n"
	lines, err := collectLines(t, bytes.NewReader(gzipBytes(t, content)))
	require.NoError(t, err)
	assert.Equal(t, []string{"line one", "line two"}, lines)
}

func TestLogReader_Lines_Empty(t *testing.T) {
	t.Parallel()

	lines, err := collectLines(t, strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestLogReader_Lines_CorruptGzip(t *testing.T) {
	t.Parallel()

	corrupt := append([]byte{0x1f, 0x8b}, []byte("not really gzip")...)
	_, err := collectLines(t, bytes.NewReader(corrupt))
	assert.Error(t, err)
}

func TestLogReader_Lines_ReadError(t *testing.T) {
	t.Parallel()

	readErr := errors.New("disk on fire")
	_, err := collectLines(t, io.MultiReader(strings.NewReader("ok\n"), &failingReader{err: readErr}))
	assert.ErrorIs(t, err, readErr)
}

func TestLogReader_Lines_StopsWhenConsumerBreaks(t *testing.T) {
	t.Parallel()

	count := 0
	for range NewLogReader().Lines(strings.NewReader("a\nb\nc\n")) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

type failingReader struct {
	err error
}

func (r *failingReader) Read([]byte) (int, error) {
	return 0, r.err
}
