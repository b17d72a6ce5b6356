package engine

import (
	"time"

	"retail-dashboard/internal/models"
)

// targetProgress projects end-of-month sales linearly from the pace so
// far. The period is assumed to be the calendar month containing the
// latest filtered transaction date. With no dated records at all it
// returns the fixed 30-day default with nothing projected.
func targetProgress(filtered []models.TransactionRecord, sales, target float64) models.TargetProgress {
	_, last, ok := dateSpan(filtered)
	if !ok {
		return models.TargetProgress{DaysTotal: 30, DaysRemaining: 30}
	}
	latest, err := time.Parse(isoDate, last)
	if err != nil {
		return models.TargetProgress{DaysTotal: 30, DaysRemaining: 30}
	}

	daysTotal := time.Date(latest.Year(), latest.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	daysElapsed := latest.Day()
	daysRemaining := daysTotal - daysElapsed
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	rateDays := daysElapsed
	if rateDays < 1 {
		rateDays = 1
	}
	dailySalesRate := sales / float64(rateDays)

	var requiredDailyRate float64
	if daysRemaining > 0 {
		remaining := target - sales
		if remaining < 0 {
			remaining = 0
		}
		requiredDailyRate = remaining / float64(daysRemaining)
	}

	projectedSales := round(dailySalesRate * float64(daysTotal))
	var projectedAchievement float64
	if target > 0 {
		projectedAchievement = round1(projectedSales / target * 100)
	}

	return models.TargetProgress{
		DaysElapsed:          daysElapsed,
		DaysTotal:            daysTotal,
		DaysRemaining:        daysRemaining,
		DailySalesRate:       round(dailySalesRate),
		RequiredDailyRate:    round(requiredDailyRate),
		ProjectedSales:       projectedSales,
		ProjectedAchievement: projectedAchievement,
		IsOnTrack:            projectedAchievement >= 100,
	}
}
