// Package xopen opens annotation, sequence and depth inputs.
//
// A path of "-" reads standard input. Gzip-compressed input is recognised by
// its magic bytes, so ".gz" suffixes are not required.
package xopen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/pgzip"
)

const bufSize = 4 << 20 // 4 MiB

// ErrNotFound is returned when an input path cannot be opened.
var ErrNotFound = errors.New("file not found")

type readCloser struct {
	io.Reader
	close func() error
}

func (rc *readCloser) Close() error { return rc.close() }

// Open returns a buffered reader for path. The caller must Close it.
func Open(path string) (io.ReadCloser, error) {
	f := os.Stdin
	closeFile := func() error { return nil } // never close stdin
	if path != "-" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		closeFile = f.Close
	}

	br := bufio.NewReaderSize(f, bufSize)
	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		zr, err := pgzip.NewReader(br)
		if err != nil {
			closeFile()
			return nil, fmt.Errorf("gzip header %s: %w", path, err)
		}
		return &readCloser{Reader: zr, close: func() error {
			zerr := zr.Close()
			if err := closeFile(); err != nil {
				return err
			}
			return zerr
		}}, nil
	}
	return &readCloser{Reader: br, close: closeFile}, nil
}
