// Package position folds booked trades into per-book signed positions.
package position

import (
	"main/internal/flow"
	"main/internal/model"
	"main/internal/model/enum"
)

// Service stores one Position per bond. Positions are the only pipeline
// records mutated in place: each trade merges a delta, the record itself
// survives.
type Service struct {
	positions *flow.Store[*model.Position]
}

func New() *Service {
	return &Service{
		positions: flow.NewStore(func(p *model.Position) string { return p.Bond.ID() }),
	}
}

func (s *Service) AddListener(l flow.Listener[*model.Position]) {
	s.positions.AddListener(l)
}

func (s *Service) Get(cusip string) (*model.Position, error) {
	return s.positions.Get(cusip)
}

// AddTrade merges the trade's signed quantity into the book bucket of its
// bond, creating the position on first sight, and notifies listeners with
// the updated record.
func (s *Service) AddTrade(trade model.Trade) error {
	pos, err := s.positions.Get(trade.Bond.ID())
	if err != nil {
		pos = model.NewPosition(trade.Bond)
		s.positions.Put(pos)
	}

	delta := trade.Quantity
	if trade.Side == enum.TradeSideSell {
		delta = -delta
	}
	pos.Add(trade.Book, delta)

	return s.positions.Notify(pos)
}
