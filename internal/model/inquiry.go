package model

import "main/internal/model/enum"

// Inquiry is a client request for a quote. The identity is fixed at
// creation; State (and the quoted Price) are the only fields that change
// while the negotiation runs.
type Inquiry struct {
	InquiryID string
	Bond      Bond
	Side      enum.TradeSide
	Quantity  Quantity
	Price     Price
	State     enum.InquiryState
}
