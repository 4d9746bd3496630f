// Package execution forwards algo execution decisions to the market: it
// re-keys the execution order by product, hands it to the publishing sink,
// and feeds trade booking.
package execution

import (
	"main/internal/flow"
	"main/internal/model"
	"main/internal/model/enum"
)

// Sink receives every finalized execution order exactly once per
// notification, together with its destination market.
type Sink interface {
	Publish(order model.ExecutionOrder, market enum.Market) error
}

// Service stores the latest execution order per bond.
type Service struct {
	orders *flow.Store[model.ExecutionOrder]
	sink   Sink
}

func New(sink Sink) *Service {
	return &Service{
		orders: flow.NewStore(func(o model.ExecutionOrder) string { return o.Bond.ID() }),
		sink:   sink,
	}
}

func (s *Service) AddListener(l flow.Listener[model.ExecutionOrder]) {
	s.orders.AddListener(l)
}

func (s *Service) Get(cusip string) (model.ExecutionOrder, error) {
	return s.orders.Get(cusip)
}

// OnAlgoExecution stores and fans out the order, then routes it to the
// destination market.
func (s *Service) OnAlgoExecution(ae model.AlgoExecution) error {
	if err := s.orders.Ingest(ae.Order); err != nil {
		return err
	}
	return s.ExecuteOrder(ae.Order, ae.Market)
}

// ExecuteOrder publishes an order to the sink.
func (s *Service) ExecuteOrder(order model.ExecutionOrder, market enum.Market) error {
	if s.sink == nil {
		return nil
	}
	return s.sink.Publish(order, market)
}
