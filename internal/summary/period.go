package summary

import (
	"errors"
	"fmt"
	"time"
)

type PeriodType string

const (
	PeriodWeekly  PeriodType = "weekly"
	PeriodMonthly PeriodType = "monthly"

	weeklyWindowDays = 7
	// a "month" is a flat 30 day window, not a calendar month
	monthlyWindowDays = 30

	dateLayout = "2006-01-02"
)

var (
	ErrInvalidPeriodType = errors.New("invalid period type")
	ErrInvalidDate       = errors.New("invalid date")
)

// Period is a half-open date range [Start, End) of fixed length.
type Period struct {
	Type     PeriodType
	Start    time.Time
	End      time.Time
	DayCount int
}

// ResolvePeriod computes the exclusive end date and day count for a period
// starting at startDate (YYYY-MM-DD).
func ResolvePeriod(periodType PeriodType, startDate string) (Period, error) {
	var dayCount int
	switch periodType {
	case PeriodWeekly:
		dayCount = weeklyWindowDays
	case PeriodMonthly:
		dayCount = monthlyWindowDays
	default:
		return Period{}, fmt.Errorf("%w: %s", ErrInvalidPeriodType, periodType)
	}

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %s", ErrInvalidDate, startDate)
	}

	return Period{
		Type:     periodType,
		Start:    start,
		End:      start.AddDate(0, 0, dayCount),
		DayCount: dayCount,
	}, nil
}

// Days enumerates the calendar dates of the period, in order.
func (p Period) Days() []time.Time {
	days := make([]time.Time, 0, p.DayCount)
	for day := p.Start; day.Before(p.End); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}
