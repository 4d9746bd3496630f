// Package pricing stores the latest mid/spread quote per bond and fans it
// out to the quote-streaming side of the pipeline.
package pricing

import (
	"main/internal/flow"
	"main/internal/model"
)

// Service is a plain keyed store of Quote: the feed ingests, listeners
// (algo streaming, GUI) consume.
type Service struct {
	quotes *flow.Store[model.Quote]
}

func New() *Service {
	return &Service{
		quotes: flow.NewStore(func(q model.Quote) string { return q.Bond.ID() }),
	}
}

func (s *Service) AddListener(l flow.Listener[model.Quote]) {
	s.quotes.AddListener(l)
}

func (s *Service) Get(cusip string) (model.Quote, error) {
	return s.quotes.Get(cusip)
}

// OnMessage upserts the quote and notifies listeners.
func (s *Service) OnMessage(q model.Quote) error {
	return s.quotes.Ingest(q)
}
