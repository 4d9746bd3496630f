// Package algostream is the two-sided quoting engine: every pricing update
// becomes a bid/offer stream with alternating size tiers.
package algostream

import (
	"main/internal/flow"
	"main/internal/model"
	"main/internal/model/enum"
)

const (
	sizeTierSmall model.Quantity = 1_000_000
	sizeTierLarge model.Quantity = 2_000_000
)

// Engine holds the latest algo stream per bond. Like the execution engine
// it owns its decision counter, seeded at 1.
type Engine struct {
	streams *flow.Store[model.AlgoStream]
	count   int64
}

func New() *Engine {
	return &Engine{
		streams: flow.NewStore(func(as model.AlgoStream) string { return as.Stream.Bond.ID() }),
		count:   1,
	}
}

func (e *Engine) AddListener(l flow.Listener[model.AlgoStream]) {
	e.streams.AddListener(l)
}

func (e *Engine) Get(cusip string) (model.AlgoStream, error) {
	return e.streams.Get(cusip)
}

// OnQuote turns a mid/spread quote into a two-sided stream. Visible size
// alternates between the two tiers on counter parity; hidden size is twice
// the visible size on both sides.
func (e *Engine) OnQuote(q model.Quote) error {
	visible := sizeTierLarge
	if e.count%2 == 0 {
		visible = sizeTierSmall
	}
	e.count++

	stream := model.PriceStream{
		Bond: q.Bond,
		Bid: model.StreamOrder{
			Price:      q.Bid(),
			VisibleQty: visible,
			HiddenQty:  2 * visible,
			Side:       enum.PricingSideBid,
		},
		Offer: model.StreamOrder{
			Price:      q.Offer(),
			VisibleQty: visible,
			HiddenQty:  2 * visible,
			Side:       enum.PricingSideOffer,
		},
	}
	return e.streams.Ingest(model.AlgoStream{Stream: stream})
}
