package model

import "main/internal/model/enum"

// Order is a single price level of one side of a book.
type Order struct {
	Price    Price
	Quantity Quantity
	Side     enum.PricingSide
}

// OrderBook holds the bid and offer ladders for one bond. Books are
// replaced wholesale on every depth update, never patched level by level.
// Ladders may carry several levels at the same price; AggregateDepth on
// the market data service collapses them.
type OrderBook struct {
	Bond Bond
	Bids []Order
	Asks []Order
}

// BidOffer is the top of book: the highest bid and lowest offer of one
// OrderBook, immutable once derived.
type BidOffer struct {
	Bid   Order
	Offer Order
}

// Spread returns offer price minus bid price.
func (bo BidOffer) Spread() Price {
	return bo.Offer.Price - bo.Bid.Price
}
