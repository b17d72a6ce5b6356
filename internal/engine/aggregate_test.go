package engine

import (
	"testing"

	"retail-dashboard/internal/models"
)

func TestComputeKPIs(t *testing.T) {
	kpis := computeKPIs(scenarioRecords(), 1)

	if kpis.Sales != 700 {
		t.Errorf("Sales = %v, want 700", kpis.Sales)
	}
	if kpis.Target != 1500 {
		t.Errorf("Target = %v, want 1500 (dedup must count each agent-month once)", kpis.Target)
	}
	if kpis.Achievement != 46.67 {
		t.Errorf("Achievement = %v, want 46.67", kpis.Achievement)
	}
	if kpis.AvgItemsPerOrder != 1.5 {
		t.Errorf("AvgItemsPerOrder = %v, want 1.5", kpis.AvgItemsPerOrder)
	}
	if kpis.AvgOrderValue != 350 {
		t.Errorf("AvgOrderValue = %v, want 350", kpis.AvgOrderValue)
	}
	if kpis.RevenuePerAgent != 700 {
		t.Errorf("RevenuePerAgent = %v, want 700", kpis.RevenuePerAgent)
	}
}

func TestComputeKPIs_Empty(t *testing.T) {
	kpis := computeKPIs(nil, 1)

	if kpis.Sales != 0 || kpis.Target != 0 || kpis.Achievement != 0 {
		t.Errorf("empty input: got sales=%v target=%v achievement=%v, want zeros",
			kpis.Sales, kpis.Target, kpis.Achievement)
	}
	if kpis.AvgItemsPerOrder != 0 || kpis.AvgOrderValue != 0 || kpis.RevenuePerAgent != 0 {
		t.Errorf("empty input: got avgItems=%v avgOrder=%v perAgent=%v, want zeros",
			kpis.AvgItemsPerOrder, kpis.AvgOrderValue, kpis.RevenuePerAgent)
	}
}

func TestComputeKPIs_ZeroTarget(t *testing.T) {
	records := []models.TransactionRecord{
		saleRecord("A", "2025-01-10", 1, 500, 0),
	}
	kpis := computeKPIs(records, 1)

	if kpis.Sales != 500 {
		t.Errorf("Sales = %v, want 500", kpis.Sales)
	}
	if kpis.Achievement != 0 {
		t.Errorf("Achievement with zero target = %v, want 0", kpis.Achievement)
	}
}

func TestComputeKPIs_ScaleMultiplier(t *testing.T) {
	kpis := computeKPIs(scenarioRecords(), 10)

	if kpis.Sales != 7000 {
		t.Errorf("Sales at scale 10 = %v, want 7000", kpis.Sales)
	}
	if kpis.Target != 15000 {
		t.Errorf("Target at scale 10 = %v, want 15000", kpis.Target)
	}
	// Achievement is a ratio and must not move with the scale.
	if kpis.Achievement != 46.67 {
		t.Errorf("Achievement at scale 10 = %v, want 46.67", kpis.Achievement)
	}
}

func TestAgentPerformance(t *testing.T) {
	agents := agentPerformance(scenarioRecords(), 1)

	if len(agents) != 2 {
		t.Fatalf("got %d agents, want 2", len(agents))
	}
	a := agents[0]
	if a.Name != "A" || a.Revenue != 700 || a.Target != 1000 || a.Achievement != 70 {
		t.Errorf("agent A = %+v, want revenue 700 target 1000 achievement 70", a)
	}
	b := agents[1]
	if b.Name != "B" || b.Revenue != 0 || b.Target != 500 || b.Achievement != 0 {
		t.Errorf("agent B = %+v, want revenue 0 target 500 achievement 0", b)
	}
}

func TestAgentPerformance_StableOrderOnTies(t *testing.T) {
	records := []models.TransactionRecord{
		saleRecord("Zara", "2025-01-10", 1, 300, 0),
		saleRecord("Andi", "2025-01-11", 1, 300, 0),
		saleRecord("Maya", "2025-01-12", 1, 300, 0),
	}
	agents := agentPerformance(records, 1)

	if len(agents) != 3 {
		t.Fatalf("got %d agents, want 3", len(agents))
	}
	// Equal revenue keeps first-seen source order.
	want := []string{"Zara", "Andi", "Maya"}
	for i, name := range want {
		if agents[i].Name != name {
			t.Errorf("agents[%d].Name = %q, want %q", i, agents[i].Name, name)
		}
	}
}

func TestTrendSeries_Monthly(t *testing.T) {
	points := trendSeries(scenarioRecords(), grainMonthly, 1)

	if len(points) != 1 {
		t.Fatalf("got %d points, want 1", len(points))
	}
	p := points[0]
	if p.Date != "2025-01" || p.Sales != 700 || p.Target != 1500 {
		t.Errorf("monthly point = %+v, want 2025-01 sales 700 target 1500", p)
	}
}

func TestTrendSeries_Yearly(t *testing.T) {
	points := trendSeries(scenarioRecords(), grainYearly, 1)

	if len(points) != 1 {
		t.Fatalf("got %d points, want 1", len(points))
	}
	p := points[0]
	if p.Date != "2025" || p.Sales != 700 || p.Target != 1500 {
		t.Errorf("yearly point = %+v, want 2025 sales 700 target 1500", p)
	}
}

func TestTrendSeries_SortedAscending(t *testing.T) {
	records := []models.TransactionRecord{
		saleRecord("A", "2025-03-01", 1, 100, 0),
		saleRecord("A", "2025-01-01", 1, 100, 0),
		saleRecord("A", "2025-02-01", 1, 100, 0),
	}
	points := trendSeries(records, grainMonthly, 1)

	want := []string{"2025-01", "2025-02", "2025-03"}
	if len(points) != len(want) {
		t.Fatalf("got %d points, want %d", len(points), len(want))
	}
	for i, date := range want {
		if points[i].Date != date {
			t.Errorf("points[%d].Date = %q, want %q", i, points[i].Date, date)
		}
	}
}

// The daily target is the monthly target divided by 30 regardless of
// the month's actual length. January has 31 days but the per-day share
// of a 1000 target is still round(1000/30) = 33, not round(1000/31) = 32.
func TestDailyTrend_TargetApportionment(t *testing.T) {
	records := []models.TransactionRecord{
		saleRecord("A", "2025-01-10", 2, 500, 1000),
		saleRecord("A", "2025-01-12", 1, 200, 1000),
	}
	points := trendSeries(records, grainDaily, 1)

	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	for _, p := range points {
		if p.Target != 33 {
			t.Errorf("daily target on %s = %v, want 33", p.Date, p.Target)
		}
	}
	if points[0].Sales != 500 || points[1].Sales != 200 {
		t.Errorf("daily sales = %v, %v, want 500, 200", points[0].Sales, points[1].Sales)
	}
}

func TestTrendSeries_ExcludesReturns(t *testing.T) {
	points := trendSeries(scenarioRecords(), grainDaily, 1)

	for _, p := range points {
		if p.Date == "2025-01-15" {
			t.Errorf("return-only day 2025-01-15 must not appear in the trend, got %+v", p)
		}
	}
}

func TestProductInsights(t *testing.T) {
	insights := productInsights(scenarioRecords(), 1)

	if len(insights.TopByRevenue) != 2 {
		t.Fatalf("got %d products, want 2 (returned SKU excluded)", len(insights.TopByRevenue))
	}
	top := insights.TopByRevenue[0]
	if top.SKUName != "Summit Ridgeline 30L Daypack" || top.TotalRevenue != 500 {
		t.Errorf("top product = %+v, want daypack revenue 500", top)
	}
	if top.Category != "CARRY GOODS" {
		t.Errorf("top category = %q, want CARRY GOODS", top.Category)
	}
	for _, p := range insights.TopByRevenue {
		if p.SKUName == "Summit Breeze Comfort Sandals" {
			t.Error("returned-only SKU must not appear in product insights")
		}
	}
}

func TestProductInsights_ListCap(t *testing.T) {
	var records []models.TransactionRecord
	for i := 0; i < 15; i++ {
		r := saleRecord("A", "2025-01-10", 1, float64(100+i), 0)
		r.SKUName = "SKU-" + string(rune('A'+i))
		records = append(records, r)
	}
	insights := productInsights(records, 1)

	if len(insights.TopByRevenue) != productListSize {
		t.Errorf("TopByRevenue length = %d, want %d", len(insights.TopByRevenue), productListSize)
	}
	if len(insights.TopByQuantity) != productListSize {
		t.Errorf("TopByQuantity length = %d, want %d", len(insights.TopByQuantity), productListSize)
	}
	if len(insights.SlowMoving) != productListSize {
		t.Errorf("SlowMoving length = %d, want %d", len(insights.SlowMoving), productListSize)
	}
	// SlowMoving is ascending by revenue; the cheapest SKU leads.
	if insights.SlowMoving[0].TotalRevenue != 100 {
		t.Errorf("SlowMoving[0].TotalRevenue = %v, want 100", insights.SlowMoving[0].TotalRevenue)
	}
}

func TestMonthlyAchievement(t *testing.T) {
	matrix := monthlyAchievement(scenarioRecords(), 1)

	if len(matrix) != 2 {
		t.Fatalf("got %d agents, want 2", len(matrix))
	}
	var agentA *models.AgentMonthly
	for i := range matrix {
		if matrix[i].Name == "A" {
			agentA = &matrix[i]
		}
	}
	if agentA == nil {
		t.Fatal("agent A missing from matrix")
	}
	if len(agentA.Months) != len(quarterMonthNames) {
		t.Fatalf("agent A has %d months, want %d", len(agentA.Months), len(quarterMonthNames))
	}
	jan := agentA.Months[0]
	if jan.Month != "Jan" || jan.Sales != 700 || jan.Target != 1000 || jan.Achievement != 70 {
		t.Errorf("agent A January = %+v, want sales 700 target 1000 achievement 70", jan)
	}
	for _, m := range agentA.Months[1:] {
		if m.Sales != 0 || m.Target != 0 {
			t.Errorf("agent A %s = %+v, want zeros", m.Month, m)
		}
	}
}

func TestTransactionListing(t *testing.T) {
	listing := transactionListing(scenarioRecords(), 1)

	if len(listing) != 3 {
		t.Fatalf("got %d transactions, want 3 (returns stay visible)", len(listing))
	}
	ret := listing[2]
	if ret.Status != "returned" {
		t.Fatalf("listing[2].Status = %q, want returned", ret.Status)
	}
	if ret.Qty != 1 || ret.GrossSales != 100 || ret.NettSales != 90 {
		t.Errorf("returned row = qty %v gross %v nett %v, want absolute values 1, 100, 90", ret.Qty, ret.GrossSales, ret.NettSales)
	}
	if ret.Category != "SHOES" {
		t.Errorf("returned row category = %q, want SHOES", ret.Category)
	}
}

func TestRoundHelpers(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"round half up", round(46.5), 47},
		{"round down", round(46.4), 46},
		{"round1", round1(96.46), 96.5},
		{"round2", round2(46.666666), 46.67},
		{"round2 exact", round2(1.5), 1.5},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}
