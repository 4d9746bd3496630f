package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/flow"
	"main/internal/model"
)

type stubFactors map[string]float64

func (f stubFactors) PV01(cusip string) (float64, error) {
	factor, ok := f[cusip]
	if !ok {
		return 0, flow.ErrNotFound
	}
	return factor, nil
}

func position(cusip string, qty model.Quantity) *model.Position {
	pos := model.NewPosition(model.Bond{CUSIP: cusip})
	pos.Add("TRSY1", qty)
	return pos
}

func TestRiskFollowsPosition(t *testing.T) {
	s := New(stubFactors{"9128283H1": 0.02})

	var got model.PV01
	s.AddListener(flow.ListenerFuncs[model.PV01]{OnAdd: func(r model.PV01) error {
		got = r
		return nil
	}})

	require.NoError(t, s.AddPosition(position("9128283H1", 1_000_000)))
	assert.Equal(t, 0.02, got.Value)
	assert.Equal(t, model.Quantity(1_000_000), got.Quantity)

	// A later position replaces the record wholesale.
	require.NoError(t, s.AddPosition(position("9128283H1", 600_000)))
	stored, err := s.Get("9128283H1")
	require.NoError(t, err)
	assert.Equal(t, model.Quantity(600_000), stored.Quantity)
}

func TestUnknownBondRejected(t *testing.T) {
	s := New(stubFactors{})
	err := s.AddPosition(position("000000000", 1_000_000))
	require.Error(t, err)
}

func TestBucketedRisk(t *testing.T) {
	factors := stubFactors{
		"9128283H1": 0.02,
		"9128283L2": 0.03,
		"912828M80": 0.05,
	}
	s := New(factors)

	require.NoError(t, s.AddPosition(position("9128283H1", 1_000_000)))
	require.NoError(t, s.AddPosition(position("9128283L2", 2_000_000)))

	sector := model.Sector{Name: "FrontEnd", Bonds: []model.Bond{
		{CUSIP: "9128283H1"},
		{CUSIP: "9128283L2"},
		{CUSIP: "912828M80"}, // no position yet, skipped
	}}
	bucket := s.BucketedRisk(sector)

	assert.Equal(t, 0.02*1_000_000+0.03*2_000_000, bucket.Total)
	assert.Equal(t, model.Quantity(3_000_000), bucket.Quantity)
	assert.Equal(t, "FrontEnd", bucket.Sector.Name)
}
