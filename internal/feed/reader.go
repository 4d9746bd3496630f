// Package feed reads the flat-file event sources and turns rows into
// domain records. A reader is a lazy, finite sequence: iterating opens the
// file, finishing closes it, and iterating again restarts from the top.
// Row layouts and the fractional price notation are a fixed external
// contract; anything that does not parse is rejected, never defaulted.
package feed

import (
	"bufio"
	"os"
	"strings"

	stderrors "errors"

	"github.com/yanun0323/errors"
)

var ErrMalformedRow = stderrors.New("malformed feed row")

// Reader iterates parsed records from a comma-separated flat file.
type Reader[T any] struct {
	path   string
	header bool
	parse  func(fields []string) (T, error)
}

// NewReader creates a reader over path. When header is set the first line
// is skipped.
func NewReader[T any](path string, header bool, parse func([]string) (T, error)) *Reader[T] {
	return &Reader[T]{path: path, header: header, parse: parse}
}

// Each streams every record through fn in file order. A parse failure or
// an fn error stops the iteration and surfaces at this call; rows already
// delivered keep whatever downstream effects they had.
func (r *Reader[T]) Each(fn func(T) error) error {
	f, err := os.Open(r.path)
	if err != nil {
		return errors.Wrap(err, "open feed")
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	first := true
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if first && r.header {
			first = false
			continue
		}
		first = false
		if line == "" {
			continue
		}

		rec, err := r.parse(strings.Split(line, ","))
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return sc.Err()
}
