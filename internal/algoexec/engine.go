// Package algoexec is the spread-crossing execution engine: it watches the
// top of book and crosses the spread whenever it is at its tightest.
package algoexec

import (
	"fmt"

	stderrors "errors"

	"github.com/yanun0323/errors"

	"main/internal/flow"
	"main/internal/model"
	"main/internal/model/enum"
)

var ErrEmptyBook = stderrors.New("order book has no levels")

// Destination is the venue every generated order is routed to.
const Destination = enum.MarketCME

// Engine holds the latest algo execution per bond. The decision counter is
// engine-owned state, seeded at 1 and shared across all bonds so that
// consecutive decisions alternate sides deterministically.
type Engine struct {
	executions *flow.Store[model.AlgoExecution]
	count      int64
}

func New() *Engine {
	return &Engine{
		executions: flow.NewStore(func(ae model.AlgoExecution) string { return ae.Order.Bond.ID() }),
		count:      1,
	}
}

func (e *Engine) AddListener(l flow.Listener[model.AlgoExecution]) {
	e.executions.AddListener(l)
}

func (e *Engine) Get(cusip string) (model.AlgoExecution, error) {
	return e.executions.Get(cusip)
}

// OnBook runs one decision cycle against a top-of-book update. When the
// spread is wider than 1/128 no order is emitted at all; the previous
// decision for the bond stays in the store untouched. The counter still
// advances so the side alternation tracks ticks, not emissions.
func (e *Engine) OnBook(top model.OrderBook) error {
	best, err := topOfBook(top)
	if err != nil {
		return err
	}

	count := e.count
	e.count++

	if best.Spread() > model.TightestSpread {
		return nil
	}

	var order model.ExecutionOrder
	if count%2 == 0 {
		// Aggress the offer: buy at the offer price for the size
		// resting on the bid.
		order = model.ExecutionOrder{
			Bond:       top.Bond,
			Side:       enum.PricingSideBid,
			Price:      best.Offer.Price,
			VisibleQty: best.Bid.Quantity,
		}
	} else {
		// Aggress the bid: sell at the bid price for the size resting
		// on the offer.
		order = model.ExecutionOrder{
			Bond:       top.Bond,
			Side:       enum.PricingSideOffer,
			Price:      best.Bid.Price,
			VisibleQty: best.Offer.Quantity,
		}
	}
	order.OrderID = fmt.Sprintf("A%012d", count)
	order.Type = enum.OrderTypeIOC

	return e.executions.Ingest(model.AlgoExecution{Order: order, Market: Destination})
}

func topOfBook(book model.OrderBook) (model.BidOffer, error) {
	if len(book.Bids) == 0 || len(book.Asks) == 0 {
		return model.BidOffer{}, errors.Wrap(ErrEmptyBook, book.Bond.ID())
	}
	return model.BidOffer{Bid: book.Bids[0], Offer: book.Asks[0]}, nil
}
