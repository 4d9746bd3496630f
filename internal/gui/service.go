// Package gui streams a throttled quote snapshot to a display file. The
// display only needs a human-rate sample, so updates are dropped when
// they arrive faster than the throttle and capped after a fixed count.
package gui

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/yanun0323/errors"

	"main/internal/model"
)

const (
	defaultThrottle  = 300 * time.Millisecond
	defaultMaxWrites = 100
)

// Service writes quote updates to a display file.
type Service struct {
	f   *os.File
	w   *bufio.Writer
	now func() time.Time

	throttle  time.Duration
	maxWrites int
	written   int
	last      time.Time
}

// New truncates path and returns a writer throttled to one update per
// 300ms, stopping after 100 writes.
func New(path string) (*Service, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create display file")
	}
	return &Service{
		f:         f,
		w:         bufio.NewWriter(f),
		now:       time.Now,
		throttle:  defaultThrottle,
		maxWrites: defaultMaxWrites,
	}, nil
}

// OnQuote samples one quote update. Updates inside the throttle window or
// past the write cap are dropped, not queued.
func (s *Service) OnQuote(q model.Quote) error {
	now := s.now()
	if s.written >= s.maxWrites {
		return nil
	}
	if !s.last.IsZero() && now.Sub(s.last) < s.throttle {
		return nil
	}

	_, err := fmt.Fprintf(s.w, "%s,%s,%s,%s\n",
		now.Format("15:04:05.000"), q.Bond.ID(), q.Bid(), q.Offer())
	if err != nil {
		return errors.Wrap(err, "write display update")
	}
	if err := s.w.Flush(); err != nil {
		return errors.Wrap(err, "flush display file")
	}

	s.written++
	s.last = now
	return nil
}

// Written returns the number of updates written so far.
func (s *Service) Written() int {
	return s.written
}

func (s *Service) Close() error {
	if err := s.w.Flush(); err != nil {
		s.f.Close()
		return errors.Wrap(err, "flush display file")
	}
	return errors.Wrap(s.f.Close(), "close display file")
}
