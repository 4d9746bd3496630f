package enum

// TradeSide is the direction of a booked trade or client inquiry.
type TradeSide uint8

const (
	_tradeSide_beg TradeSide = iota
	TradeSideBuy
	TradeSideSell
	_tradeSide_end
)

func (s TradeSide) IsAvailable() bool {
	return s > _tradeSide_beg && s < _tradeSide_end
}

func (s TradeSide) String() string {
	switch s {
	case TradeSideBuy:
		return "BUY"
	case TradeSideSell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

// ParseTradeSide maps the feed spelling to a TradeSide.
func ParseTradeSide(s string) (TradeSide, bool) {
	switch s {
	case "BUY":
		return TradeSideBuy, true
	case "SELL":
		return TradeSideSell, true
	default:
		return _tradeSide_beg, false
	}
}
