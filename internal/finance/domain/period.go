package domain

import "time"

// Period is a named time window anchored to "now".
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// DateRange is an inclusive [Start, End] interval of UTC instants.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// RangeFor maps a period token to a concrete date range ending at now.
// Unknown tokens behave as "month". Month and year decrements are
// calendar-aware: AddDate rolls January back into December of the previous
// year and normalizes day overflow at short months.
func RangeFor(period Period, now time.Time) DateRange {
	now = now.UTC()
	var start time.Time
	switch period {
	case PeriodWeek:
		start = now.AddDate(0, 0, -7)
	case PeriodYear:
		start = now.AddDate(-1, 0, 0)
	default:
		start = now.AddDate(0, -1, 0)
	}
	return DateRange{Start: start, End: now}
}
