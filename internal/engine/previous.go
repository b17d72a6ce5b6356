package engine

import (
	"time"

	"retail-dashboard/internal/models"
)

const isoDate = "2006-01-02"

// dateSpan returns the earliest and latest shipping dates present in
// records. ok is false when no record carries a date.
func dateSpan(records []models.TransactionRecord) (first, last string, ok bool) {
	for _, r := range records {
		day := r.ShipDay()
		if day == "" {
			continue
		}
		if first == "" || day < first {
			first = day
		}
		if day > last {
			last = day
		}
	}
	return first, last, first != ""
}

// previousPeriod reruns the scalar KPIs for the window of equal
// duration immediately before the currently filtered one: it ends the
// day before the current start. The window is applied to the
// scope-filtered base set only; the caller's non-date filters do not
// carry over. With no dated records the comparison is all zeros.
func previousPeriod(base, filtered []models.TransactionRecord, scale float64) models.PreviousPeriod {
	first, last, ok := dateSpan(filtered)
	if !ok {
		return models.PreviousPeriod{}
	}

	start, err := time.Parse(isoDate, first)
	if err != nil {
		return models.PreviousPeriod{}
	}
	end, err := time.Parse(isoDate, last)
	if err != nil {
		return models.PreviousPeriod{}
	}

	durationDays := int(end.Sub(start).Hours() / 24)
	prevEnd := start.AddDate(0, 0, -1)
	prevStart := prevEnd.AddDate(0, 0, -durationDays)

	window := windowRecords(base, prevStart.Format(isoDate), prevEnd.Format(isoDate))
	k := computeKPIs(window, scale)
	return models.PreviousPeriod{
		Sales:            k.Sales,
		Target:           k.Target,
		Achievement:      k.Achievement,
		AvgItemsPerOrder: k.AvgItemsPerOrder,
		AvgOrderValue:    k.AvgOrderValue,
		RevenuePerAgent:  k.RevenuePerAgent,
	}
}

// windowRecords keeps records whose shipping date lies in [start, end]
// inclusive. Undated records fall outside every window.
func windowRecords(records []models.TransactionRecord, start, end string) []models.TransactionRecord {
	out := make([]models.TransactionRecord, 0, len(records))
	for _, r := range records {
		day := r.ShipDay()
		if day == "" {
			continue
		}
		if day >= start && day <= end {
			out = append(out, r)
		}
	}
	return out
}
