package valueobject

import "time"

// monthAbbreviations holds the Portuguese three-letter month labels.
var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Fev",
	time.March:     "Mar",
	time.April:     "Abr",
	time.May:       "Mai",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Ago",
	time.September: "Set",
	time.October:   "Out",
	time.November:  "Nov",
	time.December:  "Dez",
}

// MonthLabel returns the Portuguese abbreviation of m.
func MonthLabel(m time.Month) string {
	return monthAbbreviations[m]
}

// MonthPeriod is one calendar month in a chart series.
type MonthPeriod struct {
	Label       string
	PeriodStart time.Time // first instant of the month
	PeriodEnd   time.Time // first instant of the following month, exclusive
}

// Contains reports whether t falls inside the month.
func (p MonthPeriod) Contains(t time.Time) bool {
	return !t.Before(p.PeriodStart) && t.Before(p.PeriodEnd)
}

// TrailingMonths returns count calendar months ending with the month containing now,
// oldest first. Boundaries are computed in loc.
func TrailingMonths(now time.Time, count int, loc *time.Location) []MonthPeriod {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	current := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)

	periods := make([]MonthPeriod, 0, count)
	for i := count - 1; i >= 0; i-- {
		start := current.AddDate(0, -i, 0)
		periods = append(periods, MonthPeriod{
			Label:       MonthLabel(start.Month()),
			PeriodStart: start,
			PeriodEnd:   start.AddDate(0, 1, 0),
		})
	}
	return periods
}
