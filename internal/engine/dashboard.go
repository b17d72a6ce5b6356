package engine

import "retail-dashboard/internal/models"

// BuildDashboard composes the full dashboard model from the raw record
// table. Scope restricts everything first and cannot be escaped through
// spec; the monthly matrix, the cascading options and the previous
// period deliberately see the scope-only base set rather than the
// user-filtered one. The result is freshly computed on every call and
// never mutated afterwards.
func BuildDashboard(records []models.TransactionRecord, scope string, spec FilterSpec, scale float64) models.DashboardModel {
	base := ApplyScope(records, scope)
	filtered := Apply(records, scope, spec)

	kpis := computeKPIs(filtered, scale)

	return models.DashboardModel{
		Sales:            kpis.Sales,
		Target:           kpis.Target,
		Achievement:      kpis.Achievement,
		AvgItemsPerOrder: kpis.AvgItemsPerOrder,
		AvgOrderValue:    kpis.AvgOrderValue,
		RevenuePerAgent:  kpis.RevenuePerAgent,

		SalesTrendDaily:   trendSeries(filtered, grainDaily, scale),
		SalesTrendMonthly: trendSeries(filtered, grainMonthly, scale),
		SalesTrendYearly:  trendSeries(filtered, grainYearly, scale),

		AgentPerformance:   agentPerformance(filtered, scale),
		ProductInsights:    productInsights(filtered, scale),
		MonthlyAchievement: monthlyAchievement(base, scale),
		Transactions:       transactionListing(filtered, scale),
		FilterOptions:      ResolveFilterOptions(records, scope, spec),
		PreviousPeriod:     previousPeriod(base, filtered, scale),
		TargetProgress:     targetProgress(filtered, kpis.Sales, kpis.Target),
	}
}
