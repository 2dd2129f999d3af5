// Package source opens log corpora and iterates their lines.
//
// It handles plain files, stdin via "-", transparent gzip decompression for
// ".gz" files, and the fixed per-line length cap: oversized lines are
// truncated and the remainder silently dropped, never rejected.
package source

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// MaxLineLen is the per-line length cap. Content beyond it is dropped up to
// the next newline.
const MaxLineLen = 32 * 1024

// Open returns a reader over the named corpus. "-" reads stdin.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &gzipReadCloser{zr: zr, f: f}, nil
	}
	return f, nil
}

type gzipReadCloser struct {
	zr *gzip.Reader
	f  *os.File
}

func (g *gzipReadCloser) Read(p []byte) (int, error) { return g.zr.Read(p) }

func (g *gzipReadCloser) Close() error {
	err := g.zr.Close()
	if cerr := g.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// EachLine calls fn for every line of r, without the line terminator.
// Lines longer than MaxLineLen are truncated at the cap; the rest of the
// line is consumed and dropped. A trailing unterminated line is delivered
// if non-empty. Iteration stops on the first error fn returns.
func EachLine(r io.Reader, fn func(line string) error) error {
	br := bufio.NewReaderSize(r, 64*1024)
	line := make([]byte, 0, 256)
	dropping := false

	flush := func() error {
		l := line
		if n := len(l); n > 0 && l[n-1] == '\r' {
			l = l[:n-1]
		}
		err := fn(string(l))
		line = line[:0]
		dropping = false
		return err
	}

	for {
		chunk, err := br.ReadSlice('\n')
		if len(chunk) > 0 {
			c := chunk
			if c[len(c)-1] == '\n' {
				c = c[:len(c)-1]
			}
			if !dropping {
				if room := MaxLineLen - len(line); len(c) > room {
					c = c[:room]
					dropping = true
				}
				line = append(line, c...)
			}
		}

		switch {
		case err == nil:
			if e := flush(); e != nil {
				return e
			}
		case errors.Is(err, bufio.ErrBufferFull):
			// mid-line, keep accumulating (or dropping)
		case errors.Is(err, io.EOF):
			if len(line) > 0 {
				return flush()
			}
			return nil
		default:
			return err
		}
	}
}
