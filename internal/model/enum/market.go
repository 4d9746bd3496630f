package enum

// Market is the destination venue for an execution order.
type Market uint8

const (
	_market_beg Market = iota
	MarketBrokerTec
	MarketESpeed
	MarketCME
	_market_end
)

func (m Market) IsAvailable() bool {
	return m > _market_beg && m < _market_end
}

func (m Market) String() string {
	switch m {
	case MarketBrokerTec:
		return "BROKERTEC"
	case MarketESpeed:
		return "ESPEED"
	case MarketCME:
		return "CME"
	default:
		return "UNKNOWN"
	}
}
