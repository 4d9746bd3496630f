package model

// PV01 is the dollar risk of a one basis point yield move for the current
// holding of one bond: a per-unit sensitivity factor times the aggregate
// position quantity.
type PV01 struct {
	Bond     Bond
	Value    float64
	Quantity Quantity
}

// Sector is a named bucket of bonds risk is aggregated over.
type Sector struct {
	Name  string
	Bonds []Bond
}

// SectorPV01 is bucketed risk: the weighted PV01 total over the sector's
// constituents plus their total quantity, not normalized per unit.
type SectorPV01 struct {
	Sector   Sector
	Total    float64
	Quantity Quantity
}
