// Package booking records trades, both from the trade feed and from
// executed algo orders.
package booking

import (
	"fmt"

	"main/internal/flow"
	"main/internal/model"
	"main/internal/model/enum"
)

var tradingBooks = [...]string{"TRSY1", "TRSY2", "TRSY3"}

// Service stores booked trades by trade id. Executions booked through
// OnExecution rotate through the trading books and draw trade ids from an
// engine-owned counter, so a given event sequence always books the same
// way.
type Service struct {
	trades  *flow.Store[model.Trade]
	bookIdx int
	execSeq int64
}

func New() *Service {
	return &Service{
		trades: flow.NewStore(func(t model.Trade) string { return t.TradeID }),
	}
}

func (s *Service) AddListener(l flow.Listener[model.Trade]) {
	s.trades.AddListener(l)
}

func (s *Service) Get(tradeID string) (model.Trade, error) {
	return s.trades.Get(tradeID)
}

// OnMessage books a trade from the feed and notifies listeners.
func (s *Service) OnMessage(trade model.Trade) error {
	s.BookTrade(trade)
	return s.trades.Notify(trade)
}

// BookTrade upserts a trade without notifying.
func (s *Service) BookTrade(trade model.Trade) {
	s.trades.Put(trade)
}

// OnExecution books an executed algo order as a trade. The aggressor hit
// the opposite side of the book, so the booked side is the flip of the
// order's pricing side.
func (s *Service) OnExecution(order model.ExecutionOrder) error {
	side := enum.TradeSideBuy
	if order.Side == enum.PricingSideBid {
		side = enum.TradeSideSell
	}

	book := tradingBooks[s.bookIdx]
	s.bookIdx = (s.bookIdx + 1) % len(tradingBooks)
	s.execSeq++

	trade := model.Trade{
		Bond:     order.Bond,
		TradeID:  fmt.Sprintf("E%012d", s.execSeq),
		Price:    order.Price,
		Book:     book,
		Quantity: order.VisibleQty,
		Side:     side,
	}
	return s.OnMessage(trade)
}
