// Package marketdata maintains per-bond order books from raw depth
// updates and publishes the derived top of book downstream.
package marketdata

import (
	"main/internal/flow"
	"main/internal/model"
	"main/internal/model/enum"
)

// Service stores the latest full-depth book per bond. Listeners never see
// full depth: every depth ingestion notifies them with a derived
// single-level book holding only the best bid and best offer.
type Service struct {
	books *flow.Store[model.OrderBook]
}

func New() *Service {
	return &Service{
		books: flow.NewStore(func(b model.OrderBook) string { return b.Bond.ID() }),
	}
}

// AddListener registers a top-of-book consumer.
func (s *Service) AddListener(l flow.Listener[model.OrderBook]) {
	s.books.AddListener(l)
}

// Get returns the stored full-depth book for a bond.
func (s *Service) Get(cusip string) (model.OrderBook, error) {
	return s.books.Get(cusip)
}

// IngestDepth replaces the stored book for the bond wholesale, then
// notifies listeners with the derived top-of-book view.
func (s *Service) IngestDepth(bond model.Bond, bids, asks []model.Order) error {
	return s.OnMessage(model.OrderBook{Bond: bond, Bids: bids, Asks: asks})
}

// OnMessage is the connector entry point for a full book snapshot.
func (s *Service) OnMessage(book model.OrderBook) error {
	s.books.Put(book)

	best, err := s.BestBidOffer(book.Bond.ID())
	if err != nil {
		return err
	}
	top := model.OrderBook{
		Bond: book.Bond,
		Bids: []model.Order{best.Bid},
		Asks: []model.Order{best.Offer},
	}
	return s.books.Notify(top)
}

// BestBidOffer scans the stored ladders for the highest bid and lowest
// offer.
func (s *Service) BestBidOffer(cusip string) (model.BidOffer, error) {
	book, err := s.books.Get(cusip)
	if err != nil {
		return model.BidOffer{}, err
	}

	best := model.BidOffer{
		Bid:   model.Order{Side: enum.PricingSideBid},
		Offer: model.Order{Side: enum.PricingSideOffer},
	}
	for i, o := range book.Bids {
		if i == 0 || o.Price > best.Bid.Price {
			best.Bid = o
		}
	}
	for i, o := range book.Asks {
		if i == 0 || o.Price < best.Offer.Price {
			best.Offer = o
		}
	}
	return best, nil
}

// AggregateDepth collapses the stored book into one synthetic level per
// distinct price per side, quantities summed. No cross-side matching: this
// is a depth collapse, not an execution simulation.
func (s *Service) AggregateDepth(cusip string) (model.OrderBook, error) {
	book, err := s.books.Get(cusip)
	if err != nil {
		return model.OrderBook{}, err
	}
	return model.OrderBook{
		Bond: book.Bond,
		Bids: collapse(book.Bids, enum.PricingSideBid),
		Asks: collapse(book.Asks, enum.PricingSideOffer),
	}, nil
}
