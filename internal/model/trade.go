package model

import "main/internal/model/enum"

// Trade is a booked trade in a particular book. Immutable once booked.
type Trade struct {
	Bond     Bond
	TradeID  string
	Price    Price
	Book     string
	Quantity Quantity
	Side     enum.TradeSide
}
