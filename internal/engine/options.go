package engine

import (
	"slices"
	"strings"

	"retail-dashboard/internal/models"
)

// ResolveFilterOptions derives the valid value set for every facet from
// the scope-filtered base set. Facets form a fixed total order; each
// facet's options come from the records filtered by every facet chosen
// strictly before it, never by its own chosen value. That lets the UI
// reset a downstream selection to "All" the moment an upstream choice
// invalidates it, without ever offering an option that matches zero
// rows upstream.
//
// Gift, bogo and employee sit off the main chain: employee options come
// from the post-siteName set (staff assignment is a site property, not
// a product property); gift and bogo share the set that feeds MGH4.
// Date bounds never narrow option derivation.
func ResolveFilterOptions(records []models.TransactionRecord, scope string, spec FilterSpec) models.FilterOptions {
	base := ApplyScope(records, scope)

	narrow := func(in []models.TransactionRecord, sel Selection, field func(models.TransactionRecord) string) []models.TransactionRecord {
		if !sel.Constrained() {
			return in
		}
		out := make([]models.TransactionRecord, 0, len(in))
		for _, r := range in {
			if field(r) == sel.Value() {
				out = append(out, r)
			}
		}
		return out
	}

	afterRegional := narrow(base, spec.RegionalArea, func(r models.TransactionRecord) string { return r.RegionalArea })
	afterSubRegion := narrow(afterRegional, spec.SubRegion, func(r models.TransactionRecord) string { return r.SubRegion })
	afterChannel := narrow(afterSubRegion, spec.DistributionChannel, func(r models.TransactionRecord) string { return r.DistributionChannelDesc })
	afterSite := narrow(afterChannel, spec.SiteName, func(r models.TransactionRecord) string { return r.SiteName })
	afterMaterial := narrow(afterSite, spec.MaterialType, func(r models.TransactionRecord) string { return r.MaterialTypeDesc })
	afterProduct := narrow(afterMaterial, spec.ProductType, func(r models.TransactionRecord) string { return r.ProductType })
	afterMGH1 := narrow(afterProduct, spec.MGH1, func(r models.TransactionRecord) string { return r.MGH1 })
	afterMGH2 := narrow(afterMGH1, spec.MGH2, func(r models.TransactionRecord) string { return r.MGH2 })
	afterMGH3 := narrow(afterMGH2, spec.MGH3, func(r models.TransactionRecord) string { return r.MGH3 })

	return models.FilterOptions{
		RegionalArea:        distinctValues(base, func(r models.TransactionRecord) string { return r.RegionalArea }),
		SubRegion:           distinctValues(afterRegional, func(r models.TransactionRecord) string { return r.SubRegion }),
		DistributionChannel: distinctValues(afterSubRegion, func(r models.TransactionRecord) string { return r.DistributionChannelDesc }),
		SiteName:            distinctValues(afterChannel, func(r models.TransactionRecord) string { return r.SiteName }),
		MaterialType:        distinctValues(afterSite, func(r models.TransactionRecord) string { return r.MaterialTypeDesc }),
		ProductType:         distinctValues(afterMaterial, func(r models.TransactionRecord) string { return r.ProductType }),
		MGH1:                distinctValues(afterProduct, func(r models.TransactionRecord) string { return r.MGH1 }),
		MGH2:                distinctValues(afterMGH1, func(r models.TransactionRecord) string { return r.MGH2 }),
		MGH3:                distinctValues(afterMGH2, func(r models.TransactionRecord) string { return r.MGH3 }),
		MGH4:                distinctValues(afterMGH3, func(r models.TransactionRecord) string { return r.MGH4 }),
		Gift:                distinctValues(afterMGH3, func(r models.TransactionRecord) string { return r.IsGift }),
		Bogo:                distinctValues(afterMGH3, func(r models.TransactionRecord) string { return r.IsBogo }),
		Employee:            distinctValues(afterSite, func(r models.TransactionRecord) string { return r.EmployeeName }),
	}
}

// distinctValues collects the distinct non-blank values of field in
// ascending ordinal order.
func distinctValues(records []models.TransactionRecord, field func(models.TransactionRecord) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range records {
		v := field(r)
		if strings.TrimSpace(v) == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
