package dashboard

import (
	"github.com/Misenpai/prweb/internal/calendar"
	"github.com/Misenpai/prweb/internal/roster"
)

type AttendanceQuery struct {
	Month    int    `form:"month" binding:"required,min=1,max=12"`
	Year     int    `form:"year" binding:"required,min=2000"`
	Query    string `form:"q"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type DayQuery struct {
	Month int    `form:"month" binding:"required,min=1,max=12"`
	Year  int    `form:"year" binding:"required,min=2000"`
	Date  string `form:"date" binding:"required"`
}

type CalendarQuery struct {
	Month int `form:"month" binding:"required,min=1,max=12"`
	Year  int `form:"year" binding:"required,min=2000"`
}

type RosterResponse struct {
	Month      int           `json:"month"`
	Year       int           `json:"year"`
	TotalUsers int           `json:"totalUsers"`
	Users      []roster.User `json:"users"`
}

type DayViewResponse struct {
	Date        string                  `json:"date"`
	Attendances []roster.UserAttendance `json:"attendances"`
	Absentees   []roster.User           `json:"absentees"`
	TotalAbsent int                     `json:"totalAbsent"`
}

type CalendarResponse struct {
	EmployeeNumber string         `json:"employeeNumber"`
	Username       string         `json:"username"`
	Month          int            `json:"month"`
	Year           int            `json:"year"`
	Days           []calendar.Day `json:"days"`
}

type SubmitDataResponse struct {
	Message string `json:"message"`
}
