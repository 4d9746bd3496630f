package model

import "main/internal/model/enum"

// StreamOrder is one side of a two-sided quote stream, carrying both the
// displayed and the reserve size.
type StreamOrder struct {
	Price      Price
	VisibleQty Quantity
	HiddenQty  Quantity
	Side       enum.PricingSide
}

// PriceStream is a two-sided quote for one bond.
type PriceStream struct {
	Bond  Bond
	Bid   StreamOrder
	Offer StreamOrder
}

// AlgoStream wraps the stream produced by one algo quoting decision.
type AlgoStream struct {
	Stream PriceStream
}
