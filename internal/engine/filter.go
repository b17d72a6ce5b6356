// Package engine derives the dashboard model from a flat transaction
// table: filtering, target deduplication, KPI and trend aggregation,
// cascading filter options, period comparison and run-rate projection.
// Everything here is a pure function of its inputs.
package engine

import "retail-dashboard/internal/models"

// Selection is an optional equality constraint on a single filter facet.
// The zero value is unconstrained, as is the UI sentinel "All".
type Selection struct {
	value string
}

// Equals constrains a facet to an exact value.
func Equals(value string) Selection {
	return Selection{value: value}
}

// All is the unconstrained selection.
var All = Selection{}

// Constrained reports whether the selection restricts its facet.
func (s Selection) Constrained() bool {
	return s.value != "" && s.value != "All"
}

// Value returns the constrained value, or "" when unconstrained.
func (s Selection) Value() string {
	if !s.Constrained() {
		return ""
	}
	return s.value
}

// FilterSpec is the immutable set of optional constraints a caller may
// put on the record set. Facets left as the zero Selection are ignored.
// DateStart/DateEnd are inclusive ISO-date bounds on the shipping date;
// empty means open-ended. Rows without a shipping date pass the date
// bounds.
type FilterSpec struct {
	DateStart string
	DateEnd   string

	RegionalArea        Selection
	SubRegion           Selection
	DistributionChannel Selection
	SiteName            Selection
	MaterialType        Selection
	ProductType         Selection
	MGH1                Selection
	MGH2                Selection
	MGH3                Selection
	MGH4                Selection
	Gift                Selection
	Bogo                Selection
	Employee            Selection
}

// ApplyScope restricts records to the caller's assigned sub-region.
// An empty scope (administrator) passes everything through. Scope is
// applied before, and cannot be overridden by, any FilterSpec facet.
func ApplyScope(records []models.TransactionRecord, scope string) []models.TransactionRecord {
	if scope == "" {
		return records
	}
	out := make([]models.TransactionRecord, 0, len(records))
	for _, r := range records {
		if r.SubRegion == scope {
			out = append(out, r)
		}
	}
	return out
}

// Apply evaluates scope and then every constrained facet of spec as a
// conjunction over records. Predicates are all ANDed, so evaluation
// order does not change the result set.
func Apply(records []models.TransactionRecord, scope string, spec FilterSpec) []models.TransactionRecord {
	scoped := ApplyScope(records, scope)
	out := make([]models.TransactionRecord, 0, len(scoped))
	for _, r := range scoped {
		if matches(r, spec) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r models.TransactionRecord, spec FilterSpec) bool {
	day := r.ShipDay()
	if spec.DateStart != "" && day != "" && day < spec.DateStart {
		return false
	}
	if spec.DateEnd != "" && day != "" && day > spec.DateEnd {
		return false
	}

	for _, p := range []struct {
		sel   Selection
		field string
	}{
		{spec.RegionalArea, r.RegionalArea},
		{spec.SubRegion, r.SubRegion},
		{spec.DistributionChannel, r.DistributionChannelDesc},
		{spec.SiteName, r.SiteName},
		{spec.MaterialType, r.MaterialTypeDesc},
		{spec.ProductType, r.ProductType},
		{spec.MGH1, r.MGH1},
		{spec.MGH2, r.MGH2},
		{spec.MGH3, r.MGH3},
		{spec.MGH4, r.MGH4},
		{spec.Gift, r.IsGift},
		{spec.Bogo, r.IsBogo},
		{spec.Employee, r.EmployeeName},
	} {
		if p.sel.Constrained() && p.field != p.sel.Value() {
			return false
		}
	}
	return true
}

func positiveOnly(records []models.TransactionRecord) []models.TransactionRecord {
	out := make([]models.TransactionRecord, 0, len(records))
	for _, r := range records {
		if r.Qty > 0 {
			out = append(out, r)
		}
	}
	return out
}
