package enum

// PricingSide is the side of a quoted order relative to the book.
type PricingSide uint8

const (
	_pricingSide_beg PricingSide = iota
	PricingSideBid
	PricingSideOffer
	_pricingSide_end
)

func (s PricingSide) IsAvailable() bool {
	return s > _pricingSide_beg && s < _pricingSide_end
}

func (s PricingSide) String() string {
	switch s {
	case PricingSideBid:
		return "BID"
	case PricingSideOffer:
		return "OFFER"
	default:
		return "UNKNOWN"
	}
}
