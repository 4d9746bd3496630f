package marketdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/flow"
	"main/internal/model"
	"main/internal/model/enum"
)

func mustPrice(t *testing.T, s string) model.Price {
	t.Helper()
	p, err := model.ParsePrice(s)
	require.NoError(t, err)
	return p
}

func TestBestBidOffer(t *testing.T) {
	s := New()
	bond := model.Bond{CUSIP: "9128283H1"}

	// Ladders arrive unsorted; the best levels are in the middle.
	err := s.IngestDepth(bond,
		[]model.Order{
			{Price: mustPrice(t, "99-310"), Quantity: 1_000_000, Side: enum.PricingSideBid},
			{Price: mustPrice(t, "99-317"), Quantity: 2_000_000, Side: enum.PricingSideBid},
			{Price: mustPrice(t, "99-31+"), Quantity: 3_000_000, Side: enum.PricingSideBid},
		},
		[]model.Order{
			{Price: mustPrice(t, "100-002"), Quantity: 1_000_000, Side: enum.PricingSideOffer},
			{Price: mustPrice(t, "100-001"), Quantity: 2_000_000, Side: enum.PricingSideOffer},
			{Price: mustPrice(t, "100-003"), Quantity: 3_000_000, Side: enum.PricingSideOffer},
		})
	require.NoError(t, err)

	best, err := s.BestBidOffer(bond.ID())
	require.NoError(t, err)
	assert.Equal(t, "99-317", best.Bid.Price.String())
	assert.Equal(t, model.Quantity(2_000_000), best.Bid.Quantity)
	assert.Equal(t, "100-001", best.Offer.Price.String())
	assert.Equal(t, model.Quantity(2_000_000), best.Offer.Quantity)
}

func TestAggregateDepthSumsEqualPrices(t *testing.T) {
	s := New()
	bond := model.Bond{CUSIP: "9128283H1"}

	err := s.IngestDepth(bond,
		[]model.Order{
			{Price: mustPrice(t, "99-310"), Quantity: 1_000_000, Side: enum.PricingSideBid},
			{Price: mustPrice(t, "99-310"), Quantity: 2_000_000, Side: enum.PricingSideBid},
			{Price: mustPrice(t, "99-300"), Quantity: 1_000_000, Side: enum.PricingSideBid},
		},
		[]model.Order{
			{Price: mustPrice(t, "100-010"), Quantity: 4_000_000, Side: enum.PricingSideOffer},
			{Price: mustPrice(t, "100-020"), Quantity: 5_000_000, Side: enum.PricingSideOffer},
		})
	require.NoError(t, err)

	agg, err := s.AggregateDepth(bond.ID())
	require.NoError(t, err)

	require.Len(t, agg.Bids, 2)
	assert.Equal(t, "99-310", agg.Bids[0].Price.String())
	assert.Equal(t, model.Quantity(3_000_000), agg.Bids[0].Quantity)
	assert.Equal(t, "99-300", agg.Bids[1].Price.String())

	require.Len(t, agg.Asks, 2)
	assert.Equal(t, "100-010", agg.Asks[0].Price.String())
	assert.Equal(t, "100-020", agg.Asks[1].Price.String())
}

func TestListenersSeeTopOfBookOnly(t *testing.T) {
	s := New()
	bond := model.Bond{CUSIP: "9128283H1"}

	var tops []model.OrderBook
	s.AddListener(flow.ListenerFuncs[model.OrderBook]{OnAdd: func(b model.OrderBook) error {
		tops = append(tops, b)
		return nil
	}})

	err := s.IngestDepth(bond,
		[]model.Order{
			{Price: mustPrice(t, "99-317"), Quantity: 1_000_000, Side: enum.PricingSideBid},
			{Price: mustPrice(t, "99-310"), Quantity: 2_000_000, Side: enum.PricingSideBid},
		},
		[]model.Order{
			{Price: mustPrice(t, "100-001"), Quantity: 1_000_000, Side: enum.PricingSideOffer},
			{Price: mustPrice(t, "100-010"), Quantity: 2_000_000, Side: enum.PricingSideOffer},
		})
	require.NoError(t, err)

	require.Len(t, tops, 1)
	require.Len(t, tops[0].Bids, 1)
	require.Len(t, tops[0].Asks, 1)
	assert.Equal(t, "99-317", tops[0].Bids[0].Price.String())
	assert.Equal(t, "100-001", tops[0].Asks[0].Price.String())

	// The stored book keeps full depth.
	stored, err := s.Get(bond.ID())
	require.NoError(t, err)
	assert.Len(t, stored.Bids, 2)
}
