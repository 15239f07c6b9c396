package calendar

import "time"

// Holiday is one entry of the yearly holiday feed.
type Holiday struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	IsWeekend   bool   `json:"isWeekend"`
	DayOfWeek   string `json:"dayOfWeek,omitempty"`
	Month       string `json:"month,omitempty"`
}

type holidaysResponse struct {
	Success  bool      `json:"success"`
	Holidays []Holiday `json:"holidays"`
}

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHoliday Status = "holiday"
	StatusWeekend Status = "weekend"
	StatusEmpty   Status = "empty"
)

// Day is one cell of the month grid. Padding cells carry StatusEmpty and
// a zero DayOfMonth.
type Day struct {
	DayOfMonth  int       `json:"dayOfMonth"`
	Date        time.Time `json:"date"`
	Status      Status    `json:"status"`
	Description string    `json:"description,omitempty"`
}
