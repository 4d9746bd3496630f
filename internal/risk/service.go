// Package risk converts positions into PV01 exposure, per bond and
// bucketed over curve sectors.
package risk

import (
	"main/internal/flow"
	"main/internal/model"
)

// FactorSource resolves the static per-unit PV01 factor of a bond.
type FactorSource interface {
	PV01(cusip string) (float64, error)
}

// Service stores the latest PV01 record per bond, replaced on every
// position update.
type Service struct {
	risks   *flow.Store[model.PV01]
	factors FactorSource
}

func New(factors FactorSource) *Service {
	return &Service{
		risks:   flow.NewStore(func(r model.PV01) string { return r.Bond.ID() }),
		factors: factors,
	}
}

func (s *Service) AddListener(l flow.Listener[model.PV01]) {
	s.risks.AddListener(l)
}

func (s *Service) Get(cusip string) (model.PV01, error) {
	return s.risks.Get(cusip)
}

// AddPosition replaces the bond's risk record with the static factor
// weighted by the new aggregate position and notifies listeners.
func (s *Service) AddPosition(pos *model.Position) error {
	factor, err := s.factors.PV01(pos.Bond.ID())
	if err != nil {
		return err
	}
	return s.risks.Ingest(model.PV01{
		Bond:     pos.Bond,
		Value:    factor,
		Quantity: pos.Aggregate(),
	})
}

// BucketedRisk sums pv01*quantity and quantity over the sector's
// constituents that have a risk record. The total stays weighted, not
// normalized per unit.
func (s *Service) BucketedRisk(sector model.Sector) model.SectorPV01 {
	out := model.SectorPV01{Sector: sector}
	for _, bond := range sector.Bonds {
		r, err := s.risks.Get(bond.ID())
		if err != nil {
			continue
		}
		out.Total += r.Value * float64(r.Quantity)
		out.Quantity += r.Quantity
	}
	return out
}
