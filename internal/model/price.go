package model

import (
	"strconv"

	stderrors "errors"

	"github.com/yanun0323/errors"
)

var ErrMalformedPrice = stderrors.New("malformed price string")

// Price is a bond price counted in 1/512ths of a point. The market quotes
// in 1/256 increments; the extra bit keeps derived midpoints exact.
type Price int64

const (
	// PricePoint is one whole point.
	PricePoint Price = 512
	// PriceTick is 1/256 point, the smallest quoted increment.
	PriceTick Price = 2
	// Price32nd is 1/32 point.
	Price32nd Price = 16
	// TightestSpread is 1/128 point, the tightest bid/offer spread the
	// depth feed produces.
	TightestSpread Price = 4
)

// Points returns the price in floating-point points. Display only; all
// decision logic stays in integer ticks.
func (p Price) Points() float64 {
	return float64(p) / float64(PricePoint)
}

// String renders the canonical fractional notation <whole>-<32nds><8th>,
// with '+' for the half tick. Prices carrying the sub-quote half-512th
// (exact midpoints) are floored to the nearest quotable 1/256.
func (p Price) String() string {
	whole := p / PricePoint
	rem := p % PricePoint
	if rem < 0 {
		whole--
		rem += PricePoint
	}
	xy := rem / Price32nd
	z := (rem % Price32nd) / PriceTick

	buf := make([]byte, 0, 8)
	buf = strconv.AppendInt(buf, int64(whole), 10)
	buf = append(buf, '-')
	if xy < 10 {
		buf = append(buf, '0')
	}
	buf = strconv.AppendInt(buf, int64(xy), 10)
	if z == 4 {
		buf = append(buf, '+')
	} else {
		buf = strconv.AppendInt(buf, int64(z), 10)
	}
	return string(buf)
}

// ParsePrice decodes the canonical fractional notation. The trailing digit
// counts eighths of a 32nd (1/256 point); '+' stands for the half tick and
// is the only accepted spelling of 4 so parse/format round-trips exactly.
func ParsePrice(s string) (Price, error) {
	if len(s) < 5 {
		return 0, errors.Wrap(ErrMalformedPrice, s)
	}
	sep := len(s) - 4
	if s[sep] != '-' {
		return 0, errors.Wrap(ErrMalformedPrice, s)
	}

	whole, err := strconv.ParseInt(s[:sep], 10, 64)
	if err != nil {
		return 0, errors.Wrap(ErrMalformedPrice, s)
	}
	xy, err := strconv.ParseInt(s[sep+1:sep+3], 10, 64)
	if err != nil || xy < 0 || xy > 31 {
		return 0, errors.Wrap(ErrMalformedPrice, s)
	}

	var z int64
	switch c := s[len(s)-1]; {
	case c == '+':
		z = 4
	case c >= '0' && c <= '7' && c != '4':
		z = int64(c - '0')
	default:
		return 0, errors.Wrap(ErrMalformedPrice, s)
	}

	return Price(whole)*PricePoint + Price(xy)*Price32nd + Price(z)*PriceTick, nil
}

// Quantity is a signed size in units of face value.
type Quantity int64
