package engine

import "retail-dashboard/internal/models"

// SALES_TARGET_UNIQ is a monthly figure stamped onto every row of the
// owning employee, so summing it over rows over-counts by the number of
// transactions that employee had in the month. targetTracker is the one
// shared dedup mechanism behind the total target KPI, per-agent targets,
// the three trend targets, the monthly matrix and the previous-period
// target: a value is taken the first time its key is seen and never
// again.
type targetTracker struct {
	seen map[string]struct{}
}

func newTargetTracker() *targetTracker {
	return &targetTracker{seen: make(map[string]struct{})}
}

// take returns value the first time key appears, 0 afterwards. Records
// with no positive target or no usable key yield 0 at the call sites.
func (t *targetTracker) take(key string, value float64) float64 {
	if _, dup := t.seen[key]; dup {
		return 0
	}
	t.seen[key] = struct{}{}
	return value
}

// monthKey is the canonical dedup key: employeeName::YYYY-MM. ok is
// false when the record cannot carry a target (no employee, no date, or
// a non-positive target value).
func monthKey(r models.TransactionRecord) (string, bool) {
	month := r.ShipMonth()
	if r.EmployeeName == "" || month == "" || r.SalesTargetUniq <= 0 {
		return "", false
	}
	return r.EmployeeName + "::" + month, true
}

// dayKey is the daily-trend variant: employeeName::YYYY-MM-DD.
func dayKey(r models.TransactionRecord) (string, bool) {
	day := r.ShipDay()
	if r.EmployeeName == "" || day == "" || r.SalesTargetUniq <= 0 {
		return "", false
	}
	return r.EmployeeName + "::" + day, true
}

// dedupTargetSum sums each (employee, month) target exactly once over
// records, in any order.
func dedupTargetSum(records []models.TransactionRecord) float64 {
	tracker := newTargetTracker()
	var total float64
	for _, r := range records {
		key, ok := monthKey(r)
		if !ok {
			continue
		}
		total += tracker.take(key, r.SalesTargetUniq)
	}
	return total
}
