package engine

import (
	"math"
	"slices"
	"strconv"

	"retail-dashboard/internal/models"
)

const (
	productListSize = 10

	// The daily trend spreads each monthly target evenly over an
	// assumed 30 days, whatever the month's actual length. The source
	// system does the same; do not "fix" this without product sign-off.
	daysPerMonthApprox = 30

	// Reporting quarter for the monthly achievement matrix.
	quarterFirstMonth = 1
	quarterLastMonth  = 3
)

func round(v float64) float64  { return math.Round(v) }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }

// kpiSummary is the scalar KPI subset shared by the current and the
// previous period. Every ratio defines division by zero as 0.
type kpiSummary struct {
	Sales            float64
	Target           float64
	Achievement      float64
	AvgItemsPerOrder float64
	AvgOrderValue    float64
	RevenuePerAgent  float64
}

// computeKPIs derives the scalar KPIs from a filtered record set. Sales
// counts positive-quantity rows only; the target dedups every row's
// monthly value once per employee per month.
func computeKPIs(records []models.TransactionRecord, scale float64) kpiSummary {
	positive := positiveOnly(records)

	var sales, totalQty float64
	invoices := make(map[string]struct{})
	employees := make(map[string]struct{})
	for _, r := range positive {
		sales += math.Abs(r.GrossSales) * scale
		totalQty += r.Qty
		invoices[r.InvoiceNumber] = struct{}{}
		employees[r.EmployeeNumber] = struct{}{}
	}

	target := round(dedupTargetSum(records) * scale)

	s := kpiSummary{Sales: sales, Target: target}
	if target > 0 {
		s.Achievement = round2(sales / target * 100)
	}
	if n := len(invoices); n > 0 {
		s.AvgItemsPerOrder = round2(totalQty / float64(n))
		s.AvgOrderValue = round(sales / float64(n))
	}
	if n := len(employees); n > 0 {
		s.RevenuePerAgent = round(sales / float64(n))
	}
	return s
}

// agentPerformance ranks agents by scaled revenue, descending and
// stable. Agents are registered from every filtered row, so an agent
// with a target but no sales this period still appears at achievement 0.
func agentPerformance(records []models.TransactionRecord, scale float64) []models.AgentPerformance {
	revenue := make(map[string]float64)
	byAgent := make(map[string][]models.TransactionRecord)
	var order []string
	for _, r := range records {
		if r.EmployeeName == "" {
			continue
		}
		if _, seen := revenue[r.EmployeeName]; !seen {
			revenue[r.EmployeeName] = 0
			order = append(order, r.EmployeeName)
		}
		byAgent[r.EmployeeName] = append(byAgent[r.EmployeeName], r)
	}
	for _, r := range positiveOnly(records) {
		if r.EmployeeName == "" {
			continue
		}
		revenue[r.EmployeeName] += math.Abs(r.GrossSales) * scale
	}

	out := make([]models.AgentPerformance, 0, len(order))
	for _, name := range order {
		target := round(dedupTargetSum(byAgent[name]) * scale)
		perf := models.AgentPerformance{
			Name:    name,
			Revenue: revenue[name],
			Target:  target,
		}
		if target > 0 {
			perf.Achievement = round1(perf.Revenue / target * 100)
		}
		out = append(out, perf)
	}
	slices.SortStableFunc(out, func(a, b models.AgentPerformance) int {
		switch {
		case a.Revenue > b.Revenue:
			return -1
		case a.Revenue < b.Revenue:
			return 1
		default:
			return 0
		}
	})
	return out
}

type trendGrain int

const (
	grainDaily trendGrain = iota
	grainMonthly
	grainYearly
)

// trendSeries buckets positive-quantity sales by the grain's date
// truncation. Targets dedup per employee per month (per day for the
// daily grain, apportioned at a thirtieth of the monthly value) across
// the whole series, so a bucket never re-counts an employee the
// previous bucket already took.
func trendSeries(records []models.TransactionRecord, grain trendGrain, scale float64) []models.TrendPoint {
	type bucket struct {
		sales  float64
		target float64
	}
	buckets := make(map[string]*bucket)
	tracker := newTargetTracker()

	for _, r := range positiveOnly(records) {
		day := r.ShipDay()
		if day == "" {
			continue
		}

		var period string
		switch grain {
		case grainDaily:
			period = day
		case grainMonthly:
			period = r.ShipMonth()
		case grainYearly:
			period = r.ShipYear()
		}

		b := buckets[period]
		if b == nil {
			b = &bucket{}
			buckets[period] = b
		}
		b.sales += r.GrossSales * scale

		if grain == grainDaily {
			if key, ok := dayKey(r); ok {
				b.target += tracker.take(key, r.SalesTargetUniq*scale/daysPerMonthApprox)
			}
		} else {
			if key, ok := monthKey(r); ok {
				b.target += tracker.take(key, r.SalesTargetUniq*scale)
			}
		}
	}

	out := make([]models.TrendPoint, 0, len(buckets))
	for period, b := range buckets {
		out = append(out, models.TrendPoint{
			Date:   period,
			Sales:  round(b.sales),
			Target: round(b.target),
		})
	}
	// Zero-padded ISO period keys sort chronologically as strings.
	slices.SortFunc(out, func(a, b models.TrendPoint) int {
		switch {
		case a.Date < b.Date:
			return -1
		case a.Date > b.Date:
			return 1
		default:
			return 0
		}
	})
	return out
}

// productInsights groups positive-quantity rows by SKU name and ranks
// them three ways. The same SKU may legitimately show up in both
// top-by-quantity and slow-moving.
func productInsights(records []models.TransactionRecord, scale float64) models.ProductInsights {
	type acc struct {
		summary  models.ProductSummary
		invoices map[string]struct{}
	}
	bySKU := make(map[string]*acc)
	var order []string

	for _, r := range positiveOnly(records) {
		if r.SKUName == "" {
			continue
		}
		a := bySKU[r.SKUName]
		if a == nil {
			a = &acc{
				summary: models.ProductSummary{
					SKUName:     r.SKUName,
					Category:    r.MGH3,
					ProductType: r.ProductType,
				},
				invoices: make(map[string]struct{}),
			}
			bySKU[r.SKUName] = a
			order = append(order, r.SKUName)
		}
		a.summary.TotalRevenue += math.Abs(r.GrossSales) * scale
		a.summary.TotalQty += r.Qty * scale
		a.invoices[r.InvoiceNumber] = struct{}{}
	}

	all := make([]models.ProductSummary, 0, len(order))
	for _, sku := range order {
		a := bySKU[sku]
		s := a.summary
		s.TotalRevenue = round(s.TotalRevenue)
		s.TotalQty = round(s.TotalQty)
		s.TransactionCount = len(a.invoices)
		all = append(all, s)
	}

	byRevenueDesc := slices.Clone(all)
	slices.SortStableFunc(byRevenueDesc, func(a, b models.ProductSummary) int {
		switch {
		case a.TotalRevenue > b.TotalRevenue:
			return -1
		case a.TotalRevenue < b.TotalRevenue:
			return 1
		default:
			return 0
		}
	})

	byQtyDesc := slices.Clone(all)
	slices.SortStableFunc(byQtyDesc, func(a, b models.ProductSummary) int {
		switch {
		case a.TotalQty > b.TotalQty:
			return -1
		case a.TotalQty < b.TotalQty:
			return 1
		default:
			return 0
		}
	})

	byRevenueAsc := slices.Clone(all)
	slices.SortStableFunc(byRevenueAsc, func(a, b models.ProductSummary) int {
		switch {
		case a.TotalRevenue < b.TotalRevenue:
			return -1
		case a.TotalRevenue > b.TotalRevenue:
			return 1
		default:
			return 0
		}
	})

	return models.ProductInsights{
		TopByRevenue:  head(byRevenueDesc, productListSize),
		TopByQuantity: head(byQtyDesc, productListSize),
		SlowMoving:    head(byRevenueAsc, productListSize),
	}
}

func head(s []models.ProductSummary, n int) []models.ProductSummary {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

var quarterMonthNames = []string{"Jan", "Feb", "Mar"}

// monthlyAchievement builds the reporting-quarter matrix over the
// scope-filtered base set, before user filters: every agent the caller
// can see gets exactly three month cells. The target cell takes the
// monthly value observed on any of the agent's rows; the row invariant
// makes the value constant, so last write wins.
func monthlyAchievement(base []models.TransactionRecord, scale float64) []models.AgentMonthly {
	type cell struct {
		sales  float64
		target float64
	}
	months := quarterLastMonth - quarterFirstMonth + 1
	byAgent := make(map[string][]cell)
	var order []string

	for _, r := range base {
		if r.EmployeeName == "" {
			continue
		}
		if _, seen := byAgent[r.EmployeeName]; !seen {
			byAgent[r.EmployeeName] = make([]cell, months)
			order = append(order, r.EmployeeName)
		}
	}

	for _, r := range positiveOnly(base) {
		if r.EmployeeName == "" {
			continue
		}
		month := shipMonthNumber(r)
		if month < quarterFirstMonth || month > quarterLastMonth {
			continue
		}
		cells := byAgent[r.EmployeeName]
		c := &cells[month-quarterFirstMonth]
		c.sales += r.GrossSales * scale
		if r.SalesTargetUniq > 0 {
			c.target = r.SalesTargetUniq * scale
		}
	}

	out := make([]models.AgentMonthly, 0, len(order))
	for _, name := range order {
		row := models.AgentMonthly{Name: name, Months: make([]models.MonthAchievement, months)}
		for i, c := range byAgent[name] {
			m := models.MonthAchievement{
				Month:  quarterMonthNames[i],
				Sales:  round(c.sales),
				Target: round(c.target),
			}
			if c.target > 0 {
				m.Achievement = c.sales / c.target * 100
			}
			row.Months[i] = m
		}
		out = append(out, row)
	}
	return out
}

// shipMonthNumber returns the 1-based month of the shipping date, or 0.
func shipMonthNumber(r models.TransactionRecord) int {
	month := r.ShipMonth()
	if len(month) != 7 {
		return 0
	}
	n, err := strconv.Atoi(month[5:7])
	if err != nil {
		return 0
	}
	return n
}

// transactionListing is the audit view: every filtered row, returns
// included, with absolute scaled amounts.
func transactionListing(records []models.TransactionRecord, scale float64) []models.TransactionDetail {
	out := make([]models.TransactionDetail, 0, len(records))
	for _, r := range records {
		out = append(out, models.TransactionDetail{
			Location:      r.Location,
			SiteName:      r.SiteName,
			RegionalArea:  r.RegionalArea,
			InvoiceNumber: r.InvoiceNumber,
			SKUName:       r.SKUName,
			Qty:           math.Abs(r.Qty) * scale,
			UnitPrice:     r.UnitPrice,
			NettSales:     math.Abs(r.NettSales) * scale,
			GrossSales:    math.Abs(r.GrossSales) * scale,
			EmployeeName:  r.EmployeeName,
			Position:      r.Position,
			ChannelName:   r.ChannelName,
			Status:        r.Status,
			Category:      r.MGH3,
			ProductType:   r.ProductType,
		})
	}
	return out
}
