package marketdata

import (
	"github.com/google/btree"

	"main/internal/model"
	"main/internal/model/enum"
)

const ladderDegree = 2

// collapse folds raw levels into a price-ordered ladder, summing the
// quantity of levels that share a price. Bids come out best (highest)
// first, offers best (lowest) first.
func collapse(levels []model.Order, side enum.PricingSide) []model.Order {
	tree := btree.NewG(ladderDegree, func(a, b model.Order) bool {
		return a.Price < b.Price
	})
	for _, o := range levels {
		o.Side = side
		if prev, ok := tree.Get(o); ok {
			o.Quantity += prev.Quantity
		}
		tree.ReplaceOrInsert(o)
	}

	out := make([]model.Order, 0, tree.Len())
	if side == enum.PricingSideBid {
		tree.Descend(func(o model.Order) bool {
			out = append(out, o)
			return true
		})
		return out
	}
	tree.Ascend(func(o model.Order) bool {
		out = append(out, o)
		return true
	})
	return out
}
