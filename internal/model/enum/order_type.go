package enum

// OrderType is the execution style of an order.
type OrderType uint8

const (
	_orderType_beg OrderType = iota
	OrderTypeFOK
	OrderTypeIOC
	OrderTypeMarket
	OrderTypeLimit
	OrderTypeStop
	_orderType_end
)

func (t OrderType) IsAvailable() bool {
	return t > _orderType_beg && t < _orderType_end
}

func (t OrderType) String() string {
	switch t {
	case OrderTypeFOK:
		return "FOK"
	case OrderTypeIOC:
		return "IOC"
	case OrderTypeMarket:
		return "MARKET"
	case OrderTypeLimit:
		return "LIMIT"
	case OrderTypeStop:
		return "STOP"
	default:
		return "UNKNOWN"
	}
}
