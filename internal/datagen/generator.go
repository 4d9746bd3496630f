// Package datagen produces the synthetic flat-file feeds the pipeline
// replays: quotes, order-book depth, trades and client inquiries. Output
// is deterministic for a given seed so a run can be reproduced exactly.
package datagen

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"

	"github.com/yanun0323/errors"

	"main/internal/model"
	"main/internal/model/enum"
)

const (
	depthLevels   = 5
	levelSize     = model.Quantity(10_000_000)
	eventsPerBond = 10
	timeStep      = 1000

	midLow  = 99 * model.PricePoint
	midHigh = 101 * model.PricePoint

	bookSpreadMin = model.TightestSpread
	bookSpreadMax = 4 * model.TightestSpread
)

var tradingBooks = [...]string{"TRSY1", "TRSY2", "TRSY3"}

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generator writes the four feed files. One generator carries one random
// stream, so the files of a run share a single seed.
type Generator struct {
	rng *rand.Rand
}

func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// WritePrices emits steps quote rows per bond. The mid walks from 99 up
// to 101 and back in market ticks; the spread flips between 1/128 and
// 1/64 so the tightest-spread gate downstream sees both outcomes.
func (g *Generator) WritePrices(path string, bonds []model.Bond, steps int) error {
	return g.writeFile(path, "Timestamp,CUSIP,Bid,Ask", func(w *bufio.Writer) error {
		for _, bond := range bonds {
			mid, dir := model.Price(midLow), model.PriceTick
			for i := 0; i < steps; i++ {
				half := model.PriceTick * model.Price(1+g.rng.Intn(2))
				fmt.Fprintf(w, "%012d,%s,%s,%s\n",
					(i+1)*timeStep, bond.CUSIP, mid-half, mid+half)
				mid, dir = oscillate(mid, dir, midLow, midHigh)
			}
		}
		return nil
	})
}

// WriteDepth emits steps five-level book snapshots per bond. The top
// spread cycles 1/128 up to 1/32 and back; each deeper level widens by
// one market tick per side and carries level*10M size.
func (g *Generator) WriteDepth(path string, bonds []model.Bond, steps int) error {
	header := "Timestamp,CUSIP"
	for level := 1; level <= depthLevels; level++ {
		header += fmt.Sprintf(",Bid%d,BidSize%d,Ask%d,AskSize%d", level, level, level, level)
	}
	return g.writeFile(path, header, func(w *bufio.Writer) error {
		for _, bond := range bonds {
			mid, dir := model.Price(midLow), model.PriceTick
			spread, sdir := model.Price(bookSpreadMin), model.TightestSpread
			for i := 0; i < steps; i++ {
				fmt.Fprintf(w, "%012d,%s", (i+1)*timeStep, bond.CUSIP)
				for level := 1; level <= depthLevels; level++ {
					widen := model.PriceTick * model.Price(level-1)
					size := levelSize * model.Quantity(level)
					fmt.Fprintf(w, ",%s,%d,%s,%d",
						mid-spread/2-widen, size, mid+spread/2+widen, size)
				}
				fmt.Fprintln(w)
				mid, dir = oscillate(mid, dir, midLow, midHigh)
				spread, sdir = oscillate(spread, sdir, bookSpreadMin, bookSpreadMax)
			}
		}
		return nil
	})
}

// WriteTrades emits ten trades per bond with alternating sides, quantity
// cycling 1M..5M and the booking destination rotating over the three
// trading books. Buys price below par, sells above.
func (g *Generator) WriteTrades(path string, bonds []model.Bond) error {
	return g.writeFile(path, "CUSIP,TradeID,Price,Book,Quantity,Side", func(w *bufio.Writer) error {
		for _, bond := range bonds {
			for i := 0; i < eventsPerBond; i++ {
				side := enum.TradeSideBuy
				if i%2 == 1 {
					side = enum.TradeSideSell
				}
				fmt.Fprintf(w, "%s,%s,%s,%s,%d,%s\n",
					bond.CUSIP, g.randomID(), g.randomPrice(side),
					tradingBooks[i%len(tradingBooks)],
					(i%5+1)*1_000_000, side)
			}
		}
		return nil
	})
}

// WriteInquiries emits ten RECEIVED inquiries per bond, sides and
// quantities cycling like trades.
func (g *Generator) WriteInquiries(path string, bonds []model.Bond) error {
	return g.writeFile(path, "InquiryID,CUSIP,Side,Quantity,Price,State", func(w *bufio.Writer) error {
		for _, bond := range bonds {
			for i := 0; i < eventsPerBond; i++ {
				side := enum.TradeSideBuy
				if i%2 == 1 {
					side = enum.TradeSideSell
				}
				fmt.Fprintf(w, "%s,%s,%s,%d,%s,%s\n",
					g.randomID(), bond.CUSIP, side,
					(i%5+1)*1_000_000, g.randomPrice(side),
					enum.InquiryReceived)
			}
		}
		return nil
	})
}

func (g *Generator) writeFile(path, header string, body func(*bufio.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create feed file")
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, header)
	if err := body(w); err != nil {
		return err
	}
	return errors.Wrap(w.Flush(), "flush feed file")
}

// randomPrice draws a market-tick aligned price in [99,100] for buys and
// [100,101] for sells.
func (g *Generator) randomPrice(side enum.TradeSide) model.Price {
	base := model.Price(99 * model.PricePoint)
	if side == enum.TradeSideSell {
		base = 100 * model.PricePoint
	}
	return base + model.PriceTick*model.Price(g.rng.Intn(int(model.PricePoint/model.PriceTick)+1))
}

func (g *Generator) randomID() string {
	b := make([]byte, 12)
	for i := range b {
		b[i] = idAlphabet[g.rng.Intn(len(idAlphabet))]
	}
	return string(b)
}

// oscillate steps v by dir and bounces the direction at the bounds.
func oscillate(v, dir, low, high model.Price) (model.Price, model.Price) {
	v += dir
	if v >= high {
		v, dir = high, -dir
	} else if v <= low {
		v, dir = low, -dir
	}
	return v, dir
}
