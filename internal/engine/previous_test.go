package engine

import (
	"testing"

	"retail-dashboard/internal/models"
)

func TestDateSpan(t *testing.T) {
	records := []models.TransactionRecord{
		saleRecord("A", "2025-02-08", 1, 100, 0),
		saleRecord("A", "2025-02-03", 1, 100, 0),
		{EmployeeName: "C", Qty: 1, GrossSales: 50},
	}

	first, last, ok := dateSpan(records)
	if !ok {
		t.Fatal("dateSpan() ok = false, want true")
	}
	if first != "2025-02-03" || last != "2025-02-08" {
		t.Errorf("dateSpan() = (%q, %q), want (2025-02-03, 2025-02-08)", first, last)
	}

	if _, _, ok := dateSpan(nil); ok {
		t.Error("dateSpan(nil) ok = true, want false")
	}
	if _, _, ok := dateSpan([]models.TransactionRecord{{EmployeeName: "C"}}); ok {
		t.Error("dateSpan() over undated records ok = true, want false")
	}
}

func TestWindowRecords(t *testing.T) {
	records := []models.TransactionRecord{
		saleRecord("A", "2025-01-28", 1, 100, 0),
		saleRecord("A", "2025-01-30", 1, 100, 0),
		saleRecord("A", "2025-02-02", 1, 100, 0),
		saleRecord("A", "2025-02-03", 1, 100, 0),
		{EmployeeName: "C", Qty: 1, GrossSales: 50},
	}

	got := windowRecords(records, "2025-01-28", "2025-02-02")
	if len(got) != 3 {
		t.Errorf("kept %d records, want 3 (bounds inclusive, undated excluded)", len(got))
	}
}

// The comparison window spans the same number of days as the filtered
// span and ends the day before it starts. Filtered dates 2025-02-03 to
// 2025-02-08 give a previous window of 2025-01-28 to 2025-02-02.
func TestPreviousPeriod(t *testing.T) {
	filtered := []models.TransactionRecord{
		saleRecord("A", "2025-02-03", 1, 400, 1000),
		saleRecord("A", "2025-02-08", 1, 300, 1000),
	}
	base := append([]models.TransactionRecord{
		saleRecord("C", "2025-01-30", 1, 300, 600),
		saleRecord("C", "2025-01-20", 1, 999, 600), // before the window
		saleRecord("C", "2025-02-05", 1, 999, 600), // inside the current span
	}, filtered...)

	prev := previousPeriod(base, filtered, 1)

	if prev.Sales != 300 {
		t.Errorf("previous Sales = %v, want 300", prev.Sales)
	}
	if prev.Target != 600 {
		t.Errorf("previous Target = %v, want 600", prev.Target)
	}
	if prev.Achievement != 50 {
		t.Errorf("previous Achievement = %v, want 50", prev.Achievement)
	}
}

// Non-date filters do not carry into the comparison: the previous
// window runs over the scoped base set, so another employee's in-window
// sales still count.
func TestPreviousPeriod_IgnoresNonDateFilters(t *testing.T) {
	base := []models.TransactionRecord{
		saleRecord("A", "2025-02-03", 1, 400, 1000),
		saleRecord("B", "2025-02-01", 1, 250, 500),
	}
	filtered := Apply(base, "", FilterSpec{Employee: Equals("A")})

	prev := previousPeriod(base, filtered, 1)

	// Filtered span is the single day 2025-02-03, so the previous
	// window is 2025-02-02 alone; B's 2025-02-01 row falls outside it.
	if prev.Sales != 0 {
		t.Errorf("previous Sales = %v, want 0", prev.Sales)
	}

	// Widen the filter span to two days and B's row lands in-window
	// even though the employee filter excludes B from the current view.
	base = append(base, saleRecord("A", "2025-02-04", 1, 100, 1000))
	filtered = Apply(base, "", FilterSpec{Employee: Equals("A")})
	prev = previousPeriod(base, filtered, 1)

	if prev.Sales != 250 {
		t.Errorf("previous Sales = %v, want 250 (window 2025-02-01..2025-02-02 over the base set)", prev.Sales)
	}
}

func TestPreviousPeriod_NoDates(t *testing.T) {
	filtered := []models.TransactionRecord{{EmployeeName: "C", Qty: 1, GrossSales: 50}}

	prev := previousPeriod(filtered, filtered, 1)
	if prev != (models.PreviousPeriod{}) {
		t.Errorf("previousPeriod() = %+v, want the zero comparison", prev)
	}
}
