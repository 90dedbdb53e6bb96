package linefile

import (
	"bufio"
	"errors"
	"io"
	"os"
	"unicode/utf8"

	"github.com/aalvaropc/rpnsort/internal/domain"
	"github.com/aalvaropc/rpnsort/internal/ports"
)

const defaultMaxLineBytes = 64 * 1024

type Reader struct {
	maxLineBytes int
}

type Option func(*Reader)

// WithMaxLineBytes bounds each line. A longer line is returned as a marked
// prefix, cut on a UTF-8 boundary.
func WithMaxLineBytes(n int) Option {
	return func(r *Reader) {
		if n > 0 {
			r.maxLineBytes = n
		}
	}
}

func NewReader(opts ...Option) *Reader {
	r := &Reader{maxLineBytes: defaultMaxLineBytes}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.LineSource = (*Reader)(nil)

func (r *Reader) ReadLines(path string) ([]domain.Line, error) {
	f, err := os.Open(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, os.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "linefile.open",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	var lines []domain.Line
	err = Iter(f, r.maxLineBytes, func(line []byte, truncated bool) error {
		l := domain.Line{Text: string(line)}
		if truncated {
			l.Limit = r.maxLineBytes
		}
		lines = append(lines, l)
		return nil
	})
	if err != nil {
		return nil, &domain.OpError{
			Op:   "linefile.read",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return lines, nil
}

// Iter calls fn with each line read from r, without the line terminator
// ("\n" or "\r\n"). A line longer than maxSize is passed truncated with
// truncated set, and the rest of it is discarded. An error from fn stops
// reading and is returned; EOF is not an error.
func Iter(r io.Reader, maxSize int, fn func(line []byte, truncated bool) error) error {
	b := bufio.NewReader(r)
	for {
		line, isPrefix, err := b.ReadLine()
		if err != nil {
			return eofNil(err)
		}
		if !isPrefix {
			if err := fn(truncate(line, maxSize), len(line) > maxSize); err != nil {
				return err
			}
			continue
		}

		buf := append(make([]byte, 0, len(line)*2), line...)
		for isPrefix && len(buf) <= maxSize {
			line, isPrefix, err = b.ReadLine()
			if err != nil {
				if ferr := fn(truncate(buf, maxSize), len(buf) > maxSize); ferr != nil {
					return ferr
				}
				return eofNil(err)
			}
			buf = append(buf, line...)
		}
		if err := fn(truncate(buf, maxSize), len(buf) > maxSize); err != nil {
			return err
		}
		for isPrefix {
			_, isPrefix, err = b.ReadLine()
			if err != nil {
				return eofNil(err)
			}
		}
	}
}

// truncate cuts p to at most size bytes without splitting a UTF-8 sequence.
func truncate(p []byte, size int) []byte {
	if len(p) <= size {
		return p
	}
	p = p[:size]
	for i := len(p) - 1; i >= 0 && i >= len(p)-utf8.UTFMax; i-- {
		if utf8.RuneStart(p[i]) {
			if !utf8.FullRune(p[i:]) {
				return p[:i]
			}
			break
		}
	}
	return p
}

func eofNil(err error) error {
	if err == io.EOF {
		return nil
	}
	return err
}
