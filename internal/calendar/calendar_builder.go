package calendar

import (
	"time"

	"github.com/Misenpai/prweb/internal/roster"
)

func daysIn(year, month int) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// LeadingEmptyDays returns the weekday column (0=Sunday) the 1st lands
// on. This deliberately uses the local zone while day classification uses
// UTC: the two can disagree around midnight offsets, and the rendered
// grid depends on keeping both behaviors as they are.
func LeadingEmptyDays(year, month int) int {
	return int(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local).Weekday())
}

// BuildMonth produces one status-tagged cell per day of the month for a
// single user's attendance list. Classification precedence is fixed:
// present > holiday > weekend > absent, all matched on UTC y/m/d.
// The result is rebuilt in full on every call; there is no hidden state.
func BuildMonth(year, month int, holidays []Holiday, attendances []roster.Attendance) []Day {
	total := daysIn(year, month)
	days := make([]Day, 0, total)

	for day := 1; day <= total; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

		var holidayInfo *Holiday
		for i := range holidays {
			recorded, ok := roster.ParseRecordDate(holidays[i].Date)
			if ok && roster.SameUTCDay(recorded, date) {
				holidayInfo = &holidays[i]
				break
			}
		}

		attended := false
		for _, att := range attendances {
			recorded, ok := roster.ParseRecordDate(att.Date)
			if ok && roster.SameUTCDay(recorded, date) {
				attended = true
				break
			}
		}

		weekday := date.UTC().Weekday()
		isWeekend := weekday == time.Saturday || weekday == time.Sunday

		status := StatusAbsent
		switch {
		case attended:
			status = StatusPresent
		case holidayInfo != nil:
			status = StatusHoliday
		case isWeekend:
			status = StatusWeekend
		}

		cell := Day{DayOfMonth: day, Date: date, Status: status}
		if holidayInfo != nil {
			cell.Description = holidayInfo.Description
		}
		days = append(days, cell)
	}

	return days
}

// Grid prepends the leading empty padding cells to the month's cells, so
// the first day lands in its weekday column of a Sunday-first week.
func Grid(year, month int, holidays []Holiday, attendances []roster.Attendance) []Day {
	padding := LeadingEmptyDays(year, month)
	grid := make([]Day, 0, padding+daysIn(year, month))
	for i := 0; i < padding; i++ {
		grid = append(grid, Day{Status: StatusEmpty})
	}
	return append(grid, BuildMonth(year, month, holidays, attendances)...)
}
