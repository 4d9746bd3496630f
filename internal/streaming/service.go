// Package streaming publishes the two-sided quote streams produced by the
// algo streaming engine.
package streaming

import (
	"main/internal/flow"
	"main/internal/model"
)

// Sink receives every finalized price stream exactly once per
// notification, unmodified.
type Sink interface {
	Publish(stream model.PriceStream) error
}

// Service stores the latest price stream per bond.
type Service struct {
	streams *flow.Store[model.PriceStream]
	sink    Sink
}

func New(sink Sink) *Service {
	return &Service{
		streams: flow.NewStore(func(ps model.PriceStream) string { return ps.Bond.ID() }),
		sink:    sink,
	}
}

func (s *Service) AddListener(l flow.Listener[model.PriceStream]) {
	s.streams.AddListener(l)
}

func (s *Service) Get(cusip string) (model.PriceStream, error) {
	return s.streams.Get(cusip)
}

// OnAlgoStream stores and fans out the stream, then publishes it.
func (s *Service) OnAlgoStream(as model.AlgoStream) error {
	if err := s.streams.Ingest(as.Stream); err != nil {
		return err
	}
	return s.PublishPrice(as.Stream)
}

// PublishPrice forwards a stream to the sink.
func (s *Service) PublishPrice(stream model.PriceStream) error {
	if s.sink == nil {
		return nil
	}
	return s.sink.Publish(stream)
}
