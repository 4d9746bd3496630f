// Package hist archives pipeline records as they flow: one line-oriented
// flat file per record family, plus an optional PostgreSQL store. Sinks
// are plain listeners, so wiring one in costs a single AddListener call.
package hist

import (
	"bufio"
	"os"

	"github.com/yanun0323/errors"
)

// FileSink appends one formatted line per record to a flat file. It is
// flushed after every record so the archive stays readable mid-run.
type FileSink[T any] struct {
	f      *os.File
	w      *bufio.Writer
	format func(T) string
}

// NewFileSink truncates path and returns a sink writing format(v) lines.
func NewFileSink[T any](path string, format func(T) string) (*FileSink[T], error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create history file")
	}
	return &FileSink[T]{f: f, w: bufio.NewWriter(f), format: format}, nil
}

func (s *FileSink[T]) ProcessAdd(v T) error {
	if _, err := s.w.WriteString(s.format(v)); err != nil {
		return errors.Wrap(err, "write history record")
	}
	if err := s.w.WriteByte('\n'); err != nil {
		return errors.Wrap(err, "write history record")
	}
	return errors.Wrap(s.w.Flush(), "flush history file")
}

func (s *FileSink[T]) ProcessRemove(T) error { return nil }

func (s *FileSink[T]) ProcessUpdate(v T) error { return s.ProcessAdd(v) }

func (s *FileSink[T]) Close() error {
	if err := s.w.Flush(); err != nil {
		s.f.Close()
		return errors.Wrap(err, "flush history file")
	}
	return errors.Wrap(s.f.Close(), "close history file")
}
