package feed

import (
	"strconv"

	"github.com/yanun0323/errors"

	"main/internal/model"
	"main/internal/model/enum"
)

const depthLevels = 5

// BondLookup resolves a feed CUSIP to reference data.
type BondLookup func(cusip string) (model.Bond, error)

// QuoteParser parses pricing rows: Timestamp,CUSIP,Bid,Ask.
func QuoteParser(lookup BondLookup) func([]string) (model.Quote, error) {
	return func(fields []string) (model.Quote, error) {
		if len(fields) != 4 {
			return model.Quote{}, errors.Wrap(ErrMalformedRow, "quote field count")
		}
		bond, err := lookup(fields[1])
		if err != nil {
			return model.Quote{}, err
		}
		bid, err := model.ParsePrice(fields[2])
		if err != nil {
			return model.Quote{}, err
		}
		offer, err := model.ParsePrice(fields[3])
		if err != nil {
			return model.Quote{}, err
		}
		return model.Quote{
			Bond:   bond,
			Mid:    (bid + offer) / 2,
			Spread: offer - bid,
		}, nil
	}
}

// DepthUpdate is one parsed depth snapshot row.
type DepthUpdate struct {
	Bond model.Bond
	Bids []model.Order
	Asks []model.Order
}

// DepthParser parses market data rows: Timestamp,CUSIP followed by five
// (BidPrice,BidSize,AskPrice,AskSize) level groups.
func DepthParser(lookup BondLookup) func([]string) (DepthUpdate, error) {
	return func(fields []string) (DepthUpdate, error) {
		if len(fields) != 2+4*depthLevels {
			return DepthUpdate{}, errors.Wrap(ErrMalformedRow, "depth field count")
		}
		bond, err := lookup(fields[1])
		if err != nil {
			return DepthUpdate{}, err
		}

		upd := DepthUpdate{
			Bond: bond,
			Bids: make([]model.Order, 0, depthLevels),
			Asks: make([]model.Order, 0, depthLevels),
		}
		for level := 0; level < depthLevels; level++ {
			group := fields[2+4*level : 2+4*level+4]

			bid, err := parseLevel(group[0], group[1], enum.PricingSideBid)
			if err != nil {
				return DepthUpdate{}, err
			}
			ask, err := parseLevel(group[2], group[3], enum.PricingSideOffer)
			if err != nil {
				return DepthUpdate{}, err
			}
			upd.Bids = append(upd.Bids, bid)
			upd.Asks = append(upd.Asks, ask)
		}
		return upd, nil
	}
}

// TradeParser parses trade rows: CUSIP,TradeID,Price,Book,Quantity,Side.
func TradeParser(lookup BondLookup) func([]string) (model.Trade, error) {
	return func(fields []string) (model.Trade, error) {
		if len(fields) != 6 {
			return model.Trade{}, errors.Wrap(ErrMalformedRow, "trade field count")
		}
		bond, err := lookup(fields[0])
		if err != nil {
			return model.Trade{}, err
		}
		price, err := model.ParsePrice(fields[2])
		if err != nil {
			return model.Trade{}, err
		}
		qty, err := parseQuantity(fields[4])
		if err != nil {
			return model.Trade{}, err
		}
		side, ok := enum.ParseTradeSide(fields[5])
		if !ok {
			return model.Trade{}, errors.Wrap(ErrMalformedRow, "trade side "+fields[5])
		}
		return model.Trade{
			Bond:     bond,
			TradeID:  fields[1],
			Price:    price,
			Book:     fields[3],
			Quantity: qty,
			Side:     side,
		}, nil
	}
}

// InquiryParser parses inquiry rows:
// InquiryID,CUSIP,Side,Quantity,Price,State.
func InquiryParser(lookup BondLookup) func([]string) (model.Inquiry, error) {
	return func(fields []string) (model.Inquiry, error) {
		if len(fields) != 6 {
			return model.Inquiry{}, errors.Wrap(ErrMalformedRow, "inquiry field count")
		}
		bond, err := lookup(fields[1])
		if err != nil {
			return model.Inquiry{}, err
		}
		side, ok := enum.ParseTradeSide(fields[2])
		if !ok {
			return model.Inquiry{}, errors.Wrap(ErrMalformedRow, "inquiry side "+fields[2])
		}
		qty, err := parseQuantity(fields[3])
		if err != nil {
			return model.Inquiry{}, err
		}
		price, err := model.ParsePrice(fields[4])
		if err != nil {
			return model.Inquiry{}, err
		}
		state, ok := enum.ParseInquiryState(fields[5])
		if !ok {
			return model.Inquiry{}, errors.Wrap(ErrMalformedRow, "inquiry state "+fields[5])
		}
		return model.Inquiry{
			InquiryID: fields[0],
			Bond:      bond,
			Side:      side,
			Quantity:  qty,
			Price:     price,
			State:     state,
		}, nil
	}
}

func parseLevel(price, size string, side enum.PricingSide) (model.Order, error) {
	px, err := model.ParsePrice(price)
	if err != nil {
		return model.Order{}, err
	}
	qty, err := parseQuantity(size)
	if err != nil {
		return model.Order{}, err
	}
	return model.Order{Price: px, Quantity: qty, Side: side}, nil
}

func parseQuantity(s string) (model.Quantity, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrap(ErrMalformedRow, "quantity "+s)
	}
	return model.Quantity(v), nil
}
