package model

import "time"

// Bond is immutable US Treasury reference data. Downstream records hold a
// Bond by value but never mutate it.
type Bond struct {
	CUSIP    string
	Ticker   string
	Coupon   float64
	Maturity time.Time
}

// ID returns the product identifier every keyed store uses.
func (b Bond) ID() string {
	return b.CUSIP
}
