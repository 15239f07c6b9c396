package dashboard

import (
	"github.com/Misenpai/prweb/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, enforcer *casbin.Enforcer) {
	dash := rg.Group("/dashboard")
	dash.Use(middleware.Credential())
	{
		dash.GET("/attendance", middleware.Authorize(enforcer, "attendance", "read"), handler.GetAttendance)
		dash.GET("/attendance/day", middleware.Authorize(enforcer, "attendance", "read"), handler.GetDayView)
		dash.GET("/employees/:employeeNumber/calendar", middleware.Authorize(enforcer, "calendar", "read"), handler.GetEmployeeCalendar)
		dash.GET("/notifications", middleware.Authorize(enforcer, "notifications", "read"), handler.GetNotifications)
		dash.POST("/submit-data", middleware.Authorize(enforcer, "submission", "write"), handler.SubmitData)
		dash.PUT("/employees/:employeeNumber/field-trips", middleware.Authorize(enforcer, "fieldtrip", "write"), handler.SaveFieldTrips)
	}
}
