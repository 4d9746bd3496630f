// Package refdata serves static US Treasury reference data: the traded
// bonds, their PV01 sensitivity factors, and the curve sectors risk is
// bucketed into.
package refdata

import (
	"time"

	stderrors "errors"

	"github.com/yanun0323/errors"

	"main/internal/model"
)

var ErrUnknownProduct = stderrors.New("unknown product")

type entry struct {
	bond model.Bond
	pv01 float64
}

// Service answers product lookups for every stage of the pipeline.
type Service struct {
	byCUSIP map[string]entry
	order   []string
}

// New creates a service holding the on-the-run Treasury curve.
func New() *Service {
	s := &Service{byCUSIP: make(map[string]entry)}
	for _, e := range treasuries {
		s.byCUSIP[e.bond.CUSIP] = e
		s.order = append(s.order, e.bond.CUSIP)
	}
	return s
}

// Lookup resolves a CUSIP to its bond.
func (s *Service) Lookup(cusip string) (model.Bond, error) {
	e, ok := s.byCUSIP[cusip]
	if !ok {
		return model.Bond{}, errors.Wrap(ErrUnknownProduct, cusip)
	}
	return e.bond, nil
}

// PV01 returns the static per-unit PV01 factor for a bond.
func (s *Service) PV01(cusip string) (float64, error) {
	e, ok := s.byCUSIP[cusip]
	if !ok {
		return 0, errors.Wrap(ErrUnknownProduct, cusip)
	}
	return e.pv01, nil
}

// Bonds returns every bond in curve order.
func (s *Service) Bonds() []model.Bond {
	bonds := make([]model.Bond, 0, len(s.order))
	for _, cusip := range s.order {
		bonds = append(bonds, s.byCUSIP[cusip].bond)
	}
	return bonds
}

// Sectors returns the standard curve buckets: front end (2Y, 3Y), belly
// (5Y, 7Y, 10Y) and long end (20Y, 30Y).
func (s *Service) Sectors() []model.Sector {
	bonds := s.Bonds()
	return []model.Sector{
		{Name: "FrontEnd", Bonds: bonds[0:2]},
		{Name: "Belly", Bonds: bonds[2:5]},
		{Name: "LongEnd", Bonds: bonds[5:7]},
	}
}

func mustDate(value string) time.Time {
	t, err := time.Parse("2006/01/02", value)
	if err != nil {
		panic(err)
	}
	return t
}

var treasuries = []entry{
	{model.Bond{CUSIP: "9128283H1", Ticker: "US2Y", Coupon: 0.01750, Maturity: mustDate("2019/11/30")}, 0.01948992},
	{model.Bond{CUSIP: "9128283L2", Ticker: "US3Y", Coupon: 0.01875, Maturity: mustDate("2020/12/15")}, 0.02865304},
	{model.Bond{CUSIP: "912828M80", Ticker: "US5Y", Coupon: 0.02000, Maturity: mustDate("2022/11/30")}, 0.04581119},
	{model.Bond{CUSIP: "9128283J7", Ticker: "US7Y", Coupon: 0.02125, Maturity: mustDate("2024/11/30")}, 0.06127718},
	{model.Bond{CUSIP: "9128283F5", Ticker: "US10Y", Coupon: 0.02250, Maturity: mustDate("2027/12/15")}, 0.08161449},
	{model.Bond{CUSIP: "912810TM0", Ticker: "US20Y", Coupon: 0.02400, Maturity: mustDate("2037/12/15")}, 0.11707914},
	{model.Bond{CUSIP: "912810RZ3", Ticker: "US30Y", Coupon: 0.02750, Maturity: mustDate("2047/12/15")}, 0.15013155},
}
