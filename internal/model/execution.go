package model

import "main/internal/model/enum"

// ExecutionOrder is a single order produced by an algo decision. Immutable
// once created.
type ExecutionOrder struct {
	Bond          Bond
	Side          enum.PricingSide
	OrderID       string
	Type          enum.OrderType
	Price         Price
	VisibleQty    Quantity
	HiddenQty     Quantity
	ParentOrderID string
	IsChild       bool
}

// AlgoExecution pairs an execution order with its destination market. One
// per bond per decision cycle; a new one replaces the old in the store.
type AlgoExecution struct {
	Order  ExecutionOrder
	Market enum.Market
}
