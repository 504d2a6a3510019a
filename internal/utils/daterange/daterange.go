package daterange

import "time"

// DateFormat is the wire format for all dates exchanged with the mobile app.
const DateFormat = "2006-01-02"

// Filter names recognised by Resolve. Anything else degrades to the trailing
// default window.
const (
	FilterCustom    = "Custom"
	FilterThisWeek  = "This Week"
	FilterThisMonth = "This Month"
	FilterThisYear  = "This Year"
)

// Resolve maps a named filter (or explicit custom bounds) to a concrete
// [from, to] date pair, formatted as YYYY-MM-DD.
//
// "Custom" with both bounds supplied returns them verbatim; no validation of
// order or sanity is performed (the caller owns that). The calendar presets
// are computed from now. Every other input, including unrecognised filter
// names, falls back to the trailing window of defaultDays days ending at now.
// Resolve never fails.
func Resolve(filterType, startDate, endDate string, now time.Time, defaultDays int) (string, string) {
	if filterType == FilterCustom && startDate != "" && endDate != "" {
		return startDate, endDate
	}

	switch filterType {
	case FilterThisWeek:
		monday := startOfISOWeek(now)
		return monday.Format(DateFormat), monday.AddDate(0, 0, 6).Format(DateFormat)
	case FilterThisMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		last := first.AddDate(0, 1, -1)
		return first.Format(DateFormat), last.Format(DateFormat)
	case FilterThisYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()).Format(DateFormat),
			time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location()).Format(DateFormat)
	}

	return now.AddDate(0, 0, -defaultDays).Format(DateFormat), now.Format(DateFormat)
}

// startOfISOWeek returns the Monday of the week containing t.
func startOfISOWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -(weekday - 1))
}
