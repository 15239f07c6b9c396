package calendar_test

import (
	"testing"
	"time"

	"github.com/Misenpai/prweb/internal/calendar"
	"github.com/Misenpai/prweb/internal/roster"

	"github.com/stretchr/testify/assert"
)

func TestBuildMonth_CellCountMatchesTrueDayCount(t *testing.T) {
	assert.Len(t, calendar.BuildMonth(2024, 2, nil, nil), 29) // leap year
	assert.Len(t, calendar.BuildMonth(2023, 2, nil, nil), 28)
	assert.Len(t, calendar.BuildMonth(2024, 3, nil, nil), 31)
	assert.Len(t, calendar.BuildMonth(2024, 4, nil, nil), 30)
}

func TestBuildMonth_Classification(t *testing.T) {
	holidays := []calendar.Holiday{
		{Date: "2024-03-08", Description: "Founders Day"},
	}
	attendances := []roster.Attendance{
		{Date: "2024-03-05", CheckinTime: "2024-03-05T09:00:00Z"},
	}

	days := calendar.BuildMonth(2024, 3, holidays, attendances)

	assert.Equal(t, calendar.StatusPresent, days[4].Status) // Mar 5, attended
	assert.Equal(t, calendar.StatusHoliday, days[7].Status) // Mar 8, holiday
	assert.Equal(t, "Founders Day", days[7].Description)
	assert.Equal(t, calendar.StatusWeekend, days[1].Status) // Mar 2, Saturday
	assert.Equal(t, calendar.StatusWeekend, days[2].Status) // Mar 3, Sunday
	assert.Equal(t, calendar.StatusAbsent, days[3].Status)  // Mar 4, Monday, no record
}

func TestBuildMonth_PresentBeatsHoliday(t *testing.T) {
	holidays := []calendar.Holiday{
		{Date: "2024-03-05", Description: "Founders Day"},
	}
	attendances := []roster.Attendance{
		{Date: "2024-03-05", CheckinTime: "2024-03-05T09:00:00Z"},
	}

	days := calendar.BuildMonth(2024, 3, holidays, attendances)

	assert.Equal(t, calendar.StatusPresent, days[4].Status)
}

func TestBuildMonth_Idempotent(t *testing.T) {
	holidays := []calendar.Holiday{{Date: "2024-03-08", Description: "Founders Day"}}
	attendances := []roster.Attendance{{Date: "2024-03-05"}}

	first := calendar.BuildMonth(2024, 3, holidays, attendances)
	second := calendar.BuildMonth(2024, 3, holidays, attendances)

	assert.Equal(t, first, second)
}

func TestLeadingEmptyDays(t *testing.T) {
	first := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)
	assert.Equal(t, int(first.Weekday()), calendar.LeadingEmptyDays(2024, 3))
}

func TestGrid_PaddingPlusDays(t *testing.T) {
	grid := calendar.Grid(2024, 3, nil, nil)

	padding := calendar.LeadingEmptyDays(2024, 3)
	assert.Len(t, grid, padding+31)

	for i := 0; i < padding; i++ {
		assert.Equal(t, calendar.StatusEmpty, grid[i].Status)
		assert.Zero(t, grid[i].DayOfMonth)
	}
	if padding < len(grid) {
		assert.Equal(t, 1, grid[padding].DayOfMonth)
	}
}
