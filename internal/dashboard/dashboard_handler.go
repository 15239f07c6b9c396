package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/Misenpai/prweb/internal/calendar"
	"github.com/Misenpai/prweb/internal/fieldtrip"
	"github.com/Misenpai/prweb/internal/middleware"
	"github.com/Misenpai/prweb/internal/notification"
	"github.com/Misenpai/prweb/internal/roster"
	"github.com/Misenpai/prweb/internal/shared/apperror"
	"github.com/Misenpai/prweb/internal/shared/response"
	"github.com/Misenpai/prweb/internal/upstream"

	"github.com/gin-gonic/gin"
)

// NotificationRelay is the slice of the relay the handler needs.
type NotificationRelay interface {
	Refresh(ctx context.Context, cred upstream.Credential) error
	Pending() []notification.Notification
	Submit(ctx context.Context, cred upstream.Credential, req notification.SubmitDataRequest) (string, error)
}

type Handler struct {
	roster     roster.Service
	holidays   calendar.HolidayService
	relay      NotificationRelay
	fieldTrips fieldtrip.Service
}

func NewHandler(rosterSvc roster.Service, holidays calendar.HolidayService, relay NotificationRelay, fieldTrips fieldtrip.Service) *Handler {
	return &Handler{
		roster:     rosterSvc,
		holidays:   holidays,
		relay:      relay,
		fieldTrips: fieldTrips,
	}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// GetAttendance returns the month's roster, optionally filtered by a
// search query and paginated.
func (h *Handler) GetAttendance(c *gin.Context) {
	var q AttendanceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	cred := middleware.CredentialFrom(c)
	monthly, err := h.roster.Monthly(c.Request.Context(), cred, q.Month, q.Year)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	users := roster.Filter(monthly.Data, q.Query)

	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = 25
	}

	total := len(users)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	meta := response.NewPaginationMeta(int64(total), page, pageSize)
	response.Success(c, http.StatusOK, RosterResponse{
		Month:      monthly.Month,
		Year:       monthly.Year,
		TotalUsers: monthly.TotalUsers,
		Users:      users[start:end],
	}, &meta)
}

// GetDayView returns everyone present on one date plus the derived
// absentee list.
func (h *Handler) GetDayView(c *gin.Context) {
	var q DayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	date, err := time.ParseInLocation("2006-01-02", q.Date, time.UTC)
	if err != nil {
		writeServiceError(c, apperror.InvalidField("Date"))
		return
	}

	cred := middleware.CredentialFrom(c)
	monthly, err := h.roster.Monthly(c.Request.Context(), cred, q.Month, q.Year)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	present := roster.AttendancesOn(monthly.Data, date)
	absentees := roster.DeriveAbsentees(monthly.Data, date, present)

	response.Success(c, http.StatusOK, DayViewResponse{
		Date:        q.Date,
		Attendances: present,
		Absentees:   absentees,
		TotalAbsent: len(absentees),
	}, nil)
}

// GetEmployeeCalendar renders one employee's month as a status-tagged
// day grid, holidays included.
func (h *Handler) GetEmployeeCalendar(c *gin.Context) {
	var q CalendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	employeeNumber := c.Param("employeeNumber")
	cred := middleware.CredentialFrom(c)

	monthly, err := h.roster.Monthly(c.Request.Context(), cred, q.Month, q.Year)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	var user *roster.User
	for i := range monthly.Data {
		if monthly.Data[i].EmployeeNumber == employeeNumber {
			user = &monthly.Data[i]
			break
		}
	}
	if user == nil {
		writeServiceError(c, apperror.ErrNotFound)
		return
	}

	holidays, err := h.holidays.ForYear(c.Request.Context(), cred, q.Year)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, CalendarResponse{
		EmployeeNumber: user.EmployeeNumber,
		Username:       user.Username,
		Month:          q.Month,
		Year:           q.Year,
		Days:           calendar.Grid(q.Year, q.Month, holidays, user.Attendances),
	}, nil)
}

// GetNotifications refreshes and returns the pending HR data requests.
func (h *Handler) GetNotifications(c *gin.Context) {
	cred := middleware.CredentialFrom(c)
	if err := h.relay.Refresh(c.Request.Context(), cred); err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, h.relay.Pending(), nil)
}

// SubmitData forwards attendance data to HR for one period.
func (h *Handler) SubmitData(c *gin.Context) {
	var req notification.SubmitDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	if !req.SendAll && len(req.SelectedEmployees) == 0 {
		writeServiceError(c, apperror.RequiredField("Selected Employees"))
		return
	}

	cred := middleware.CredentialFrom(c)
	msg, err := h.relay.Submit(c.Request.Context(), cred, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, SubmitDataResponse{Message: msg}, nil)
}

// SaveFieldTrips records off-campus work periods for one employee.
func (h *Handler) SaveFieldTrips(c *gin.Context) {
	var req fieldtrip.SaveFieldTripsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	employeeNumber := c.Param("employeeNumber")
	if err := h.fieldTrips.Save(c.Request.Context(), employeeNumber, req.FieldTrips); err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"saved": len(req.FieldTrips)}, nil)
}
