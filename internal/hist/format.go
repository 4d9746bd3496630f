package hist

import (
	"fmt"
	"sort"
	"strings"

	"main/internal/model"
)

// FormatPosition renders a position as CUSIP, the per-book breakdown in
// book order, and the aggregate.
func FormatPosition(pos *model.Position) string {
	type bucket struct {
		book string
		qty  model.Quantity
	}
	var buckets []bucket
	pos.EachBook(func(book string, qty model.Quantity) {
		buckets = append(buckets, bucket{book, qty})
	})
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].book < buckets[j].book })

	var sb strings.Builder
	sb.WriteString(pos.Bond.ID())
	for _, b := range buckets {
		fmt.Fprintf(&sb, ",%s:%d", b.book, b.qty)
	}
	fmt.Fprintf(&sb, ",AGG:%d", pos.Aggregate())
	return sb.String()
}

// FormatRisk renders a per-bond PV01 record.
func FormatRisk(r model.PV01) string {
	return fmt.Sprintf("%s,%g,%d", r.Bond.ID(), r.Value, r.Quantity)
}

// FormatExecution renders an execution order.
func FormatExecution(o model.ExecutionOrder) string {
	return fmt.Sprintf("%s,%s,%s,%s,%s,%d,%d",
		o.OrderID, o.Bond.ID(), o.Side, o.Type, o.Price, o.VisibleQty, o.HiddenQty)
}

// FormatStream renders both sides of a price stream.
func FormatStream(ps model.PriceStream) string {
	return fmt.Sprintf("%s,%s,%d,%d,%s,%d,%d",
		ps.Bond.ID(),
		ps.Bid.Price, ps.Bid.VisibleQty, ps.Bid.HiddenQty,
		ps.Offer.Price, ps.Offer.VisibleQty, ps.Offer.HiddenQty)
}

// FormatInquiry renders an inquiry in its feed row layout.
func FormatInquiry(inq model.Inquiry) string {
	return fmt.Sprintf("%s,%s,%s,%d,%s,%s",
		inq.InquiryID, inq.Bond.ID(), inq.Side, inq.Quantity, inq.Price, inq.State)
}
