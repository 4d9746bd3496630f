package model

import (
	"errors"
	"testing"
)

func TestPriceRoundTrip(t *testing.T) {
	testCases := []string{
		"99-000",
		"99-001",
		"99-00+",
		"99-007",
		"99-16+",
		"99-312",
		"100-000",
		"100-317",
		"0-01+",
		"-1-310",
	}

	for _, tc := range testCases {
		t.Run(tc, func(t *testing.T) {
			p, err := ParsePrice(tc)
			if err != nil {
				t.Fatalf("parse failed: %+v", err)
			}
			if got := p.String(); got != tc {
				t.Fatalf("round-trip mismatch! should be %s but got %s", tc, got)
			}
		})
	}
}

func TestParsePriceValues(t *testing.T) {
	testCases := []struct {
		input    string
		expected Price
	}{
		{"100-000", 100 * PricePoint},
		{"99-000", 99 * PricePoint},
		{"99-16+", 99*PricePoint + 16*Price32nd + 4*PriceTick},
		{"100-001", 100*PricePoint + PriceTick},
		{"99-310", 99*PricePoint + 31*Price32nd},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			p, err := ParsePrice(tc.input)
			if err != nil {
				t.Fatalf("parse failed: %+v", err)
			}
			if p != tc.expected {
				t.Fatalf("value mismatch! should be %d but got %d", tc.expected, p)
			}
		})
	}
}

func TestParsePriceMalformed(t *testing.T) {
	testCases := []string{
		"",
		"100",
		"100-",
		"100-32",
		"100-320",
		"100-008",
		"100-004", // half tick must be spelled '+'
		"100-0+0",
		"abc-000",
		"100_000",
	}

	for _, tc := range testCases {
		t.Run(tc, func(t *testing.T) {
			if _, err := ParsePrice(tc); !errors.Is(err, ErrMalformedPrice) {
				t.Fatalf("should reject %q, got err %+v", tc, err)
			}
		})
	}
}

func TestPricePoints(t *testing.T) {
	p, err := ParsePrice("99-16+")
	if err != nil {
		t.Fatalf("parse failed: %+v", err)
	}
	if got := p.Points(); got != 99.515625 {
		t.Fatalf("points mismatch! should be 99.515625 but got %v", got)
	}
}

func TestQuoteBidOffer(t *testing.T) {
	q := Quote{Mid: 100 * PricePoint, Spread: TightestSpread}
	if got := q.Bid().String(); got != "99-317" {
		t.Fatalf("bid mismatch! should be 99-317 but got %s", got)
	}
	if got := q.Offer().String(); got != "100-001" {
		t.Fatalf("offer mismatch! should be 100-001 but got %s", got)
	}
	if q.Offer()-q.Bid() != q.Spread {
		t.Fatalf("spread mismatch: %d", q.Offer()-q.Bid())
	}
}
