package model

// Quote is the pricing view of one bond: a mid price and the bid/offer
// spread around it.
type Quote struct {
	Bond   Bond
	Mid    Price
	Spread Price
}

// Bid returns mid minus half the spread.
func (q Quote) Bid() Price {
	return q.Mid - q.Spread/2
}

// Offer returns mid plus half the spread.
func (q Quote) Offer() Price {
	return q.Mid + q.Spread/2
}
