package ingestors

import (
	"bufio"
	"bytes"
	"io"
	"iter"

	"github.com/klauspost/compress/gzip"
)

const maxLineBytes = 1024 * 1024

var gzipMagic = []byte{0x1f, 0x8b}

type LogReader interface {
	// Lines yields the lines of r in order without their line terminators. The stream is
	// gunzipped when it starts with the gzip magic bytes. Iteration stops after the first error.
	Lines(r io.Reader) iter.Seq2[string, error]
}

type logReader struct{}

func NewLogReader() LogReader {
	return &logReader{}
}

func (l *logReader) Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		src, closeFn, err := decompress(r)
		if err != nil {
			yield("", err)
			return
		}
		defer closeFn()

		scanner := bufio.NewScanner(src)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
		for scanner.Scan() {
			if !yield(scanner.Text(), nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield("", err)
		}
	}
}

func decompress(r io.Reader) (io.Reader, func(), error) {
	buffered := bufio.NewReader(r)
	magic, err := buffered.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		return nil, nil, err
	}
	if !bytes.Equal(magic, gzipMagic) {
		return buffered, func() {}, nil
	}

	gzReader, err := gzip.NewReader(buffered)
	if err != nil {
		return nil, nil, err
	}
	return gzReader, func() { _ = gzReader.Close() }, nil
}
