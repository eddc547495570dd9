package pricing

import (
	"time"

	"github.com/szekelyhub/transit-permit-service/internal/domain"
)

// Window is the calendar range a permit is valid for, date-only.
type Window struct {
	Start time.Time
	End   time.Time
}

// SingleDay reports whether the window covers just the start date.
func (w Window) SingleDay() bool {
	return w.Start.Equal(w.End)
}

// String renders the window as "YYYY-MM-DD" for a single day or
// "YYYY-MM-DD - YYYY-MM-DD" for a range.
func (w Window) String() string {
	if w.Start.IsZero() {
		return ""
	}
	if w.SingleDay() {
		return w.Start.Format(domain.DateFormat)
	}
	return w.Start.Format(domain.DateFormat) + " - " + w.End.Format(domain.DateFormat)
}

// Validity derives the permit validity window from the start date string
// and the period.
//
// A daily or unset period is valid on the start date only. Otherwise the
// end date is the start advanced by the period's months minus one day,
// except that a start on the last day of its month ends on the last day
// of the month the period lands in, so last-day starts always end on a
// last day. All arithmetic is civil, date-only, in UTC.
//
// An unparseable start date yields the zero Window.
func Validity(startDate string, period domain.Period) Window {
	start, err := time.ParseInLocation(domain.DateFormat, startDate, time.UTC)
	if err != nil {
		return Window{}
	}

	months := period.Months()
	if months == 0 {
		return Window{Start: start, End: start}
	}

	y, m, d := start.Date()

	var end time.Time
	if isLastDayOfMonth(start) {
		// Day 0 of month m+months+1 is the last day of month m+months.
		end = time.Date(y, m+time.Month(months)+1, 0, 0, 0, 0, 0, time.UTC)
	} else {
		end = time.Date(y, m+time.Month(months), d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	}

	return Window{Start: start, End: end}
}

func isLastDayOfMonth(t time.Time) bool {
	return t.AddDate(0, 0, 1).Day() == 1
}
