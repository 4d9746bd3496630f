package model

// Position tracks the signed quantity of one bond across trading books.
// Unlike the other pipeline records it is mutated incrementally: trades
// merge deltas into the book buckets, the record is never replaced.
type Position struct {
	Bond   Bond
	byBook map[string]Quantity
}

// NewPosition creates an empty position for a bond.
func NewPosition(bond Bond) *Position {
	return &Position{Bond: bond, byBook: make(map[string]Quantity)}
}

// Add merges a signed quantity delta into a book bucket.
func (p *Position) Add(book string, qty Quantity) {
	p.byBook[book] += qty
}

// Quantity returns the signed position held in one book.
func (p *Position) Quantity(book string) Quantity {
	return p.byBook[book]
}

// Books returns the number of books with an entry.
func (p *Position) Books() int {
	return len(p.byBook)
}

// Aggregate sums the position over all books.
func (p *Position) Aggregate() Quantity {
	var sum Quantity
	for _, qty := range p.byBook {
		sum += qty
	}
	return sum
}

// EachBook visits every book bucket. Iteration order is unspecified.
func (p *Position) EachBook(fn func(book string, qty Quantity)) {
	for book, qty := range p.byBook {
		fn(book, qty)
	}
}
